package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"pake/internal/platform"
	"pake/internal/shell"
)

var (
	errNotReady     = errors.New("host window is not ready")
	errOutOfProcess = errors.New("operation not supported on out-of-process windows")
)

// primaryWindow is the single Wails window of this process
type primaryWindow struct {
	ctx     context.Context
	rt      runtimeAPI
	scripts *ScriptInjector
}

var _ shell.Window = (*primaryWindow)(nil)

func (w *primaryWindow) Label() string { return shell.PrimaryWindowLabel }

func (w *primaryWindow) Hide() error {
	if w.ctx == nil {
		return errNotReady
	}
	w.rt.WindowHide(w.ctx)
	return nil
}

func (w *primaryWindow) Show() error {
	if w.ctx == nil {
		return errNotReady
	}
	w.rt.WindowShow(w.ctx)
	return nil
}

// Close closes the only window of the process, which ends the Wails loop
// through its normal close path.
func (w *primaryWindow) Close() error {
	if w.ctx == nil {
		return errNotReady
	}
	w.rt.Quit(w.ctx)
	return nil
}

func (w *primaryWindow) Surface() platform.Surface {
	return &surface{ctx: w.ctx, rt: w.rt, scripts: w.scripts}
}

// surface drives the embedded browser through script evaluation
type surface struct {
	ctx     context.Context
	rt      runtimeAPI
	scripts *ScriptInjector
}

func (s *surface) SetZoom(factor float64) error {
	if s.ctx == nil {
		return errNotReady
	}
	s.rt.WindowExecJS(s.ctx, zoomScript(factor))
	return nil
}

// RemoveUserScripts stops injecting scripts into later page loads and drops
// the tags already in the current document.
func (s *surface) RemoveUserScripts() error {
	if s.ctx == nil {
		return errNotReady
	}
	if s.scripts != nil {
		s.scripts.Clear()
	}
	s.rt.WindowExecJS(s.ctx, `document.querySelectorAll("script[`+initScriptAttr+`]").forEach(function (el) { el.remove(); });`)
	return nil
}

func (s *surface) SetBackgroundColour(r, g, b, a uint8) error {
	if s.ctx == nil {
		return errNotReady
	}
	s.rt.WindowSetBackgroundColour(s.ctx, r, g, b, a)
	return nil
}

func zoomScript(factor float64) string {
	return fmt.Sprintf(`document.documentElement.style.zoom = "%s";`, strconv.FormatFloat(factor, 'f', -1, 64))
}

// childWindow is a secondary window running in its own process
type childWindow struct {
	label string
	proc  process
}

var _ shell.Window = (*childWindow)(nil)

func (c *childWindow) Label() string { return c.label }

func (c *childWindow) Hide() error { return errOutOfProcess }

func (c *childWindow) Show() error { return errOutOfProcess }

func (c *childWindow) Close() error {
	if c.proc == nil {
		return nil
	}
	if err := c.proc.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("close %s: %w", c.label, err)
	}
	return nil
}

func (c *childWindow) Surface() platform.Surface { return nil }
