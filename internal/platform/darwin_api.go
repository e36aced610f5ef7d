package platform

import (
	"fmt"

	"pake/internal/config"
)

// DarwinAPI implements Adapter for macOS
type DarwinAPI struct{}

// NewDarwinAPI creates a new macOS adapter
func NewDarwinAPI() *DarwinAPI {
	return &DarwinAPI{}
}

func (d *DarwinAPI) Name() string { return "macos" }

// DataDir is not used on macOS; the content surface keeps its own store
func (d *DarwinAPI) DataDir(home, productName string) (string, bool) {
	return "", false
}

func (d *DarwinAPI) UserAgent(ua config.UserAgent) string {
	return ua.MacOS
}

// NativeFileItems returns the editing-oriented item set of the macOS File menu
func (d *DarwinAPI) NativeFileItems() []NativeItem {
	return []NativeItem{
		NativeEnterFullScreen,
		NativeMinimize,
		NativeSeparator,
		NativeCopy,
		NativeCut,
		NativePaste,
		NativeUndo,
		NativeRedo,
		NativeSelectAll,
		NativeSeparator,
	}
}

func (d *DarwinAPI) TransparencyGuaranteed() bool { return true }

// ApplyZoom sets the page zoom. The same call also drops every injected user
// script and tints the window background.
// TODO: move the script/background side effects behind their own operation
// once product confirms whether they belong to zoom at all.
func (d *DarwinAPI) ApplyZoom(s Surface, factor float64) error {
	if err := s.SetZoom(factor); err != nil {
		return fmt.Errorf("set page zoom: %w", err)
	}
	if err := s.RemoveUserScripts(); err != nil {
		return fmt.Errorf("remove user scripts: %w", err)
	}
	c := ZoomBackdrop
	if err := s.SetBackgroundColour(c.R, c.G, c.B, c.A); err != nil {
		return fmt.Errorf("set background colour: %w", err)
	}
	return nil
}
