package platform

import "pake/internal/config"

// Adapter captures everything the shell does differently per host OS.
// Exactly one implementation is compiled in, chosen by NewAdapter.
type Adapter interface {
	// Name is the user-agent key of this OS: "macos", "linux" or "windows"
	Name() string
	// DataDir returns the per-user data directory for productName, or false
	// when the OS does not give the window an explicit data directory.
	DataDir(home, productName string) (string, bool)
	// UserAgent picks this OS's string out of the configured set
	UserAgent(ua config.UserAgent) string
	// NativeFileItems lists the OS-provided items placed ahead of the custom
	// entries in the File menu
	NativeFileItems() []NativeItem
	// TransparencyGuaranteed reports whether a transparent window is honored
	// by the windowing system rather than merely accepted
	TransparencyGuaranteed() bool
	// ApplyZoom sets the zoom factor of the content surface
	ApplyZoom(s Surface, factor float64) error
}

// Surface is the embedded browser inside a window
type Surface interface {
	SetZoom(factor float64) error
	RemoveUserScripts() error
	SetBackgroundColour(r, g, b, a uint8) error
}

// NativeItem names an OS-provided menu entry
type NativeItem string

const (
	NativeEnterFullScreen NativeItem = "enter_full_screen"
	NativeMinimize        NativeItem = "minimize"
	NativeSeparator       NativeItem = "separator"
	NativeCopy            NativeItem = "copy"
	NativeCut             NativeItem = "cut"
	NativePaste           NativeItem = "paste"
	NativeUndo            NativeItem = "undo"
	NativeRedo            NativeItem = "redo"
	NativeSelectAll       NativeItem = "select_all"
)

// Label returns the menu text for the item
func (n NativeItem) Label() string {
	switch n {
	case NativeEnterFullScreen:
		return "Enter Full Screen"
	case NativeMinimize:
		return "Minimize"
	case NativeCopy:
		return "Copy"
	case NativeCut:
		return "Cut"
	case NativePaste:
		return "Paste"
	case NativeUndo:
		return "Undo"
	case NativeRedo:
		return "Redo"
	case NativeSelectAll:
		return "Select All"
	default:
		return ""
	}
}

// RGBA is an 8-bit colour
type RGBA struct {
	R, G, B, A uint8
}

// ZoomBackdrop is the window tint the macOS zoom path applies
var ZoomBackdrop = RGBA{R: 128, G: 51, B: 102, A: 255}
