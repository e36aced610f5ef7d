package shell

import (
	"fmt"

	shellerrors "pake/internal/infrastructure/errors"
	"pake/internal/infrastructure/logging"
)

// MenuDispatcher routes application menu clicks to window operations and zoom
type MenuDispatcher struct {
	app    App
	zoom   *ZoomController
	logger logging.Logger
}

// NewMenuDispatcher creates a dispatcher for the application menu
func NewMenuDispatcher(app App, zoom *ZoomController, logger logging.Logger) *MenuDispatcher {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &MenuDispatcher{app: app, zoom: zoom, logger: logger}
}

// Handle runs the action bound to id against w. Failures are logged and
// returned; the session keeps running. Unknown ids are ignored.
func (d *MenuDispatcher) Handle(id string, w Window) error {
	var err error
	switch id {
	case MenuHide:
		err = windowOp(w, "hide", Window.Hide)
	case MenuClose:
		err = windowOp(w, "close", Window.Close)
	case MenuQuit:
		d.logger.Info("Quit requested", "source", "menu")
		d.app.Quit()
	case MenuZoomOut:
		err = d.zoom.SetZoom(w, ZoomOutFactor)
	case MenuZoomIn:
		err = d.zoom.SetZoom(w, ZoomInFactor)
	case MenuReset:
		err = d.zoom.SetZoom(w, ZoomResetFactor)
	default:
		d.logger.Debug("Ignoring unknown menu event", "id", id)
		return nil
	}

	if err != nil {
		logging.LogError(d.logger, err, "menu_"+id, nil)
	}
	return err
}

func windowOp(w Window, action string, op func(Window) error) error {
	if w == nil {
		return shellerrors.HandleWindowOperation(action, "", action, fmt.Errorf("no window"))
	}
	if err := op(w); err != nil {
		return shellerrors.HandleWindowOperation(action, w.Label(), action, err)
	}
	return nil
}
