package shell

import (
	"errors"

	"pake/internal/platform"
)

type fakeSurface struct {
	zoom    float64
	calls   int
	zoomErr error
}

func (s *fakeSurface) SetZoom(factor float64) error {
	s.calls++
	if s.zoomErr != nil {
		return s.zoomErr
	}
	s.zoom = factor
	return nil
}

func (s *fakeSurface) RemoveUserScripts() error                   { return nil }
func (s *fakeSurface) SetBackgroundColour(r, g, b, a uint8) error { return nil }

type fakeWindow struct {
	label   string
	hidden  bool
	closed  bool
	surface *fakeSurface
	opErr   error
}

func newFakeWindow(label string) *fakeWindow {
	return &fakeWindow{label: label, surface: &fakeSurface{zoom: 1}}
}

func (w *fakeWindow) Label() string { return w.label }

func (w *fakeWindow) Hide() error {
	if w.opErr != nil {
		return w.opErr
	}
	w.hidden = true
	return nil
}

func (w *fakeWindow) Show() error {
	if w.opErr != nil {
		return w.opErr
	}
	w.hidden = false
	return nil
}

func (w *fakeWindow) Close() error {
	if w.opErr != nil {
		return w.opErr
	}
	w.closed = true
	return nil
}

func (w *fakeWindow) Surface() platform.Surface {
	if w.surface == nil {
		return nil
	}
	return w.surface
}

type fakeApp struct {
	windows  map[string]*fakeWindow
	opened   []WindowSpec
	openErr  error
	quitCall int
}

func newFakeApp(windows ...*fakeWindow) *fakeApp {
	a := &fakeApp{windows: map[string]*fakeWindow{}}
	for _, w := range windows {
		a.windows[w.label] = w
	}
	return a
}

func (a *fakeApp) Window(label string) (Window, bool) {
	w, ok := a.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

func (a *fakeApp) OpenWindow(spec WindowSpec) (Window, error) {
	if a.openErr != nil {
		return nil, a.openErr
	}
	a.opened = append(a.opened, spec)
	w := newFakeWindow(spec.Label)
	a.windows[spec.Label] = w
	return w, nil
}

func (a *fakeApp) Quit() { a.quitCall++ }

var errRejected = errors.New("rejected by host")
