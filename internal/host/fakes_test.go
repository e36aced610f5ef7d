package host

import (
	"context"
	"errors"
	"os"
	"sync"
)

type fakeRuntime struct {
	mu         sync.Mutex
	calls      []string
	scripts    []string
	fullscreen bool
	background [4]uint8
}

func (f *fakeRuntime) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeRuntime) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRuntime) Scripts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.scripts...)
}

func (f *fakeRuntime) WindowHide(context.Context)     { f.record("hide") }
func (f *fakeRuntime) WindowShow(context.Context)     { f.record("show") }
func (f *fakeRuntime) WindowMinimise(context.Context) { f.record("minimise") }
func (f *fakeRuntime) Quit(context.Context)           { f.record("quit") }

func (f *fakeRuntime) WindowFullscreen(context.Context) {
	f.record("fullscreen")
	f.fullscreen = true
}

func (f *fakeRuntime) WindowUnfullscreen(context.Context) {
	f.record("unfullscreen")
	f.fullscreen = false
}

func (f *fakeRuntime) WindowIsFullscreen(context.Context) bool { return f.fullscreen }

func (f *fakeRuntime) WindowExecJS(_ context.Context, js string) {
	f.record("exec")
	f.mu.Lock()
	f.scripts = append(f.scripts, js)
	f.mu.Unlock()
}

func (f *fakeRuntime) WindowSetBackgroundColour(_ context.Context, r, g, b, a uint8) {
	f.record("background")
	f.background = [4]uint8{r, g, b, a}
}

// fakeProcess runs until killed
type fakeProcess struct {
	once   sync.Once
	done   chan struct{}
	killed bool
}

func newFakeProcess() *fakeProcess {
	return &fakeProcess{done: make(chan struct{})}
}

func (p *fakeProcess) Kill() error {
	err := os.ErrProcessDone
	p.once.Do(func() {
		p.killed = true
		close(p.done)
		err = nil
	})
	return err
}

func (p *fakeProcess) Wait() error {
	<-p.done
	return errors.New("signal: killed")
}

type fakeLauncher struct {
	mu    sync.Mutex
	args  [][]string
	procs []*fakeProcess
	err   error
}

func (l *fakeLauncher) launch(args []string) (process, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	p := newFakeProcess()
	l.args = append(l.args, args)
	l.procs = append(l.procs, p)
	return p, nil
}
