package shell

import "pake/internal/platform"

// Window labels known to the shell
const (
	PrimaryWindowLabel = "pake"
	AboutWindowLabel   = "about"
)

// Window is a top-level window owned by the host framework. Handles are only
// touched from the host's UI thread.
type Window interface {
	Label() string
	Hide() error
	Show() error
	Close() error
	Surface() platform.Surface
}

// App is the host application as seen from menu and tray handlers
type App interface {
	// Window looks up an open window by label
	Window(label string) (Window, bool)
	// OpenWindow builds a secondary window
	OpenWindow(spec WindowSpec) (Window, error)
	// Quit asks the host to tear down and exit with status 0
	Quit()
}
