package platform

import (
	"fmt"
	"path/filepath"

	"pake/internal/config"
)

// WindowsAPI implements Adapter for Windows (WebView2)
type WindowsAPI struct{}

// NewWindowsAPI creates a new Windows adapter
func NewWindowsAPI() *WindowsAPI {
	return &WindowsAPI{}
}

func (w *WindowsAPI) Name() string { return "windows" }

// DataDir returns <home>/AppData/Roaming/<product>
func (w *WindowsAPI) DataDir(home, productName string) (string, bool) {
	return filepath.Join(home, "AppData", "Roaming", productName), true
}

func (w *WindowsAPI) UserAgent(ua config.UserAgent) string {
	return ua.Windows
}

func (w *WindowsAPI) NativeFileItems() []NativeItem {
	return nil
}

func (w *WindowsAPI) TransparencyGuaranteed() bool { return false }

// ApplyZoom sets the controller zoom factor
func (w *WindowsAPI) ApplyZoom(s Surface, factor float64) error {
	if err := s.SetZoom(factor); err != nil {
		return fmt.Errorf("set zoom factor: %w", err)
	}
	return nil
}
