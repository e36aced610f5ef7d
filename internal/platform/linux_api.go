package platform

import (
	"path/filepath"

	"pake/internal/config"
)

// LinuxAPI implements Adapter for Linux (WebKitGTK)
type LinuxAPI struct{}

// NewLinuxAPI creates a new Linux adapter
func NewLinuxAPI() *LinuxAPI {
	return &LinuxAPI{}
}

func (l *LinuxAPI) Name() string { return "linux" }

// DataDir returns <home>/.config/<product>
func (l *LinuxAPI) DataDir(home, productName string) (string, bool) {
	return filepath.Join(home, ".config", productName), true
}

func (l *LinuxAPI) UserAgent(ua config.UserAgent) string {
	return ua.Linux
}

func (l *LinuxAPI) NativeFileItems() []NativeItem {
	return nil
}

func (l *LinuxAPI) TransparencyGuaranteed() bool { return false }

// ApplyZoom sets the zoom level directly. WebKitGTK gives no useful failure
// signal, so errors are dropped.
func (l *LinuxAPI) ApplyZoom(s Surface, factor float64) error {
	_ = s.SetZoom(factor)
	return nil
}
