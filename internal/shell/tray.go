package shell

import (
	"fmt"

	shellerrors "pake/internal/infrastructure/errors"
	"pake/internal/infrastructure/logging"
)

// Tray menu item ids
const (
	TrayHide  = "hide"
	TrayShow  = "show"
	TrayQuit  = "quit"
	TrayAbout = "about"
)

// AboutPage is the bundled resource shown by the about window
const AboutPage = "about_pake.html"

// TrayItem is one tray menu entry
type TrayItem struct {
	ID    string
	Label string
}

// TrayMenu is the ordered tray menu
type TrayMenu struct {
	Items []TrayItem
}

// BuildTray returns the tray menu: Hide, Show, Quit, About
func BuildTray() TrayMenu {
	return TrayMenu{Items: []TrayItem{
		{ID: TrayHide, Label: "Hide"},
		{ID: TrayShow, Label: "Show"},
		{ID: TrayQuit, Label: "Quit"},
		{ID: TrayAbout, Label: "About"},
	}}
}

// AboutWindowSpec describes the about window. It does not depend on the
// primary window's configuration.
func AboutWindowSpec() WindowSpec {
	return WindowSpec{
		Label:     AboutWindowLabel,
		Title:     "About",
		Target:    Target{Kind: TargetLocal, Location: AboutPage},
		Width:     100,
		Height:    100,
		Resizable: true,
	}
}

// TrayController dispatches tray clicks
type TrayController struct {
	logger logging.Logger
}

// NewTrayController creates a tray controller
func NewTrayController(logger logging.Logger) *TrayController {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &TrayController{logger: logger}
}

// Handle runs the action bound to id. Failures are logged and returned.
func (t *TrayController) Handle(id string, app App) error {
	var err error
	switch id {
	case TrayHide:
		err = primaryOp(app, "hide", Window.Hide)
	case TrayShow:
		err = primaryOp(app, "show", Window.Show)
	case TrayQuit:
		t.logger.Info("Quit requested", "source", "tray")
		app.Quit()
	case TrayAbout:
		if _, openErr := app.OpenWindow(AboutWindowSpec()); openErr != nil {
			err = shellerrors.HandleWindowOperation("open_about", AboutWindowLabel, "open", openErr)
		}
	default:
		t.logger.Debug("Ignoring unknown tray event", "id", id)
		return nil
	}

	if err != nil {
		logging.LogError(t.logger, err, "tray_"+id, nil)
	}
	return err
}

func primaryOp(app App, action string, op func(Window) error) error {
	w, ok := app.Window(PrimaryWindowLabel)
	if !ok {
		return shellerrors.HandleWindowOperation(action, PrimaryWindowLabel, action,
			fmt.Errorf("window %q not found", PrimaryWindowLabel))
	}
	return windowOp(w, action, op)
}
