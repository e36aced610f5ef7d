package host

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"pake/internal/infrastructure/logging"
	"pake/internal/platform"
	"pake/internal/shell"
)

// Flags understood by a re-executed secondary window process
const (
	WindowSpecFlag = "window-spec"
	SessionFlag    = "session"
)

// Host is the running Wails application as seen by the shell. Tray callbacks
// arrive on their own goroutine, so all state is guarded by mu.
type Host struct {
	mu       sync.Mutex
	ctx      context.Context
	rt       runtimeAPI
	scripts  *ScriptInjector
	children map[string]*childWindow
	session  string
	launch   launcher
	logger   logging.Logger
}

var _ shell.App = (*Host)(nil)

// New creates a host whose primary window injects scripts
func New(scripts *ScriptInjector, session string, logger logging.Logger) *Host {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Host{
		rt:       wailsRuntime{},
		scripts:  scripts,
		children: make(map[string]*childWindow),
		session:  session,
		launch:   selfLauncher,
		logger:   logger,
	}
}

// Attach binds the host to the Wails context handed to OnStartup
func (h *Host) Attach(ctx context.Context) {
	h.mu.Lock()
	h.ctx = ctx
	h.mu.Unlock()
}

// Detach drops the Wails context once the loop has shut down
func (h *Host) Detach() {
	h.mu.Lock()
	h.ctx = nil
	h.mu.Unlock()
}

// Primary returns the primary window, or nil before startup
func (h *Host) Primary() shell.Window {
	w, ok := h.Window(shell.PrimaryWindowLabel)
	if !ok {
		return nil
	}
	return w
}

// Window looks up an open window by label
func (h *Host) Window(label string) (shell.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if label == shell.PrimaryWindowLabel {
		if h.ctx == nil {
			return nil, false
		}
		return &primaryWindow{ctx: h.ctx, rt: h.rt, scripts: h.scripts}, true
	}
	c, ok := h.children[label]
	if !ok {
		return nil, false
	}
	return c, true
}

// OpenWindow starts a secondary window process for spec. Labels are unique
// while the window is open.
func (h *Host) OpenWindow(spec shell.WindowSpec) (shell.Window, error) {
	if spec.Label == "" || spec.Label == shell.PrimaryWindowLabel {
		return nil, fmt.Errorf("invalid window label %q", spec.Label)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, open := h.children[spec.Label]; open {
		return nil, fmt.Errorf("window %q is already open", spec.Label)
	}

	encoded, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encode window spec: %w", err)
	}
	args := []string{"--" + WindowSpecFlag, string(encoded)}
	if h.session != "" {
		args = append(args, "--"+SessionFlag, h.session)
	}

	proc, err := h.launch(args)
	if err != nil {
		return nil, fmt.Errorf("start window %q: %w", spec.Label, err)
	}

	child := &childWindow{label: spec.Label, proc: proc}
	h.children[spec.Label] = child
	h.logger.Info("Window opened", "window", spec.Label, "target", spec.Target.Location)

	go h.reap(child)
	return child, nil
}

func (h *Host) reap(child *childWindow) {
	err := child.proc.Wait()

	h.mu.Lock()
	if h.children[child.label] == child {
		delete(h.children, child.label)
	}
	h.mu.Unlock()

	h.logger.Debug("Window process exited", "window", child.label, "error", err)
}

// Quit closes every secondary window and ends the Wails loop
func (h *Host) Quit() {
	h.CloseChildren()

	h.mu.Lock()
	ctx := h.ctx
	h.mu.Unlock()

	if ctx != nil {
		h.rt.Quit(ctx)
	}
}

// CloseChildren terminates all secondary window processes
func (h *Host) CloseChildren() {
	h.mu.Lock()
	children := make([]*childWindow, 0, len(h.children))
	for _, c := range h.children {
		children = append(children, c)
	}
	h.children = make(map[string]*childWindow)
	h.mu.Unlock()

	for _, c := range children {
		if err := c.Close(); err != nil {
			h.logger.Warn("Failed to close window", "window", c.label, "error", err)
		}
	}
}

// RunNative performs the host action behind an OS-provided menu item
func (h *Host) RunNative(item platform.NativeItem) error {
	h.mu.Lock()
	ctx := h.ctx
	h.mu.Unlock()

	if ctx == nil {
		return errNotReady
	}

	switch item {
	case platform.NativeEnterFullScreen:
		if h.rt.WindowIsFullscreen(ctx) {
			h.rt.WindowUnfullscreen(ctx)
		} else {
			h.rt.WindowFullscreen(ctx)
		}
	case platform.NativeMinimize:
		h.rt.WindowMinimise(ctx)
	default:
		cmd, ok := editCommands[item]
		if !ok {
			return nil
		}
		h.rt.WindowExecJS(ctx, fmt.Sprintf(`document.execCommand(%q);`, cmd))
	}
	return nil
}
