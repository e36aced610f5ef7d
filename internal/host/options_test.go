package host

import (
	"math"
	"testing"

	"pake/internal/shell"

	"github.com/wailsapp/wails/v2/pkg/menu"
)

func TestBuildOptions(t *testing.T) {
	spec := shell.WindowSpec{
		Label:      shell.PrimaryWindowLabel,
		Target:     shell.Target{Kind: shell.TargetLocal, Location: "index.html"},
		Width:      800.4,
		Height:     600.6,
		Resizable:  false,
		Fullscreen: true,
		DataDir:    `C:\Users\u\AppData\Roaming\WeRead`,
	}
	appMenu := menu.NewMenu()

	opts, err := BuildOptions(spec, AppOptions{
		ProductName: "WeRead",
		Version:     "1.0.0",
		Assets:      bundle,
		Menu:        appMenu,
	}, nil)
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}

	if opts.Width != 800 || opts.Height != 601 {
		t.Errorf("size = %dx%d", opts.Width, opts.Height)
	}
	if !opts.DisableResize {
		t.Error("non-resizable spec should disable resize")
	}
	if !opts.Fullscreen {
		t.Error("fullscreen not carried over")
	}
	if opts.Title != "" {
		t.Errorf("Title = %q", opts.Title)
	}
	if !opts.Mac.TitleBar.HideTitle {
		t.Error("empty spec title should hide the macOS title")
	}
	if opts.Windows.WebviewUserDataPath != spec.DataDir {
		t.Errorf("WebviewUserDataPath = %q", opts.Windows.WebviewUserDataPath)
	}
	if opts.Linux.ProgramName != "WeRead" {
		t.Errorf("ProgramName = %q", opts.Linux.ProgramName)
	}
	if opts.BackgroundColour.A != 255 || opts.Windows.WebviewIsTransparent {
		t.Error("opaque window should not be transparent")
	}
	if opts.Menu != appMenu {
		t.Error("menu not carried over")
	}
	if opts.AssetServer == nil || opts.AssetServer.Handler == nil {
		t.Fatal("asset server handler missing")
	}
}

func TestBuildOptions_Transparent(t *testing.T) {
	spec := shell.WindowSpec{
		Title:       "About",
		Target:      shell.Target{Kind: shell.TargetLocal, Location: "about_pake.html"},
		Width:       100,
		Height:      100,
		Resizable:   true,
		Transparent: true,
	}

	opts, err := BuildOptions(spec, AppOptions{ProductName: "WeRead", Assets: bundle}, nil)
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}

	if opts.Title != "About" || opts.Mac.TitleBar.HideTitle {
		t.Errorf("Title = %q, hidden = %v", opts.Title, opts.Mac.TitleBar.HideTitle)
	}
	if opts.DisableResize {
		t.Error("resizable spec should allow resize")
	}
	if opts.BackgroundColour.A != 0 {
		t.Errorf("background alpha = %d", opts.BackgroundColour.A)
	}
	if !opts.Windows.WebviewIsTransparent || !opts.Mac.WebviewIsTransparent || !opts.Linux.WindowIsTranslucent {
		t.Error("transparency flags not set for every platform")
	}
}

func TestBuildOptions_BadTarget(t *testing.T) {
	_, err := BuildOptions(shell.WindowSpec{Target: shell.Target{Kind: shell.TargetExternal, Location: "example.com"}}, AppOptions{}, nil)
	if err == nil {
		t.Fatal("expected error for relative external target")
	}
}

func TestDimension(t *testing.T) {
	tests := map[float64]int{
		800:   800,
		0.4:   1,
		-20:   1,
		1.5:   2,
		99.49: 99,
		32768: maxDimension,
		40000: maxDimension,
		1e300: maxDimension,
	}
	for in, want := range tests {
		if got := dimension(in); got != want {
			t.Errorf("dimension(%v) = %d, want %d", in, got, want)
		}
	}

	if got := dimension(math.Inf(1)); got != maxDimension {
		t.Errorf("dimension(+Inf) = %d", got)
	}
	if got := dimension(math.NaN()); got != 1 {
		t.Errorf("dimension(NaN) = %d", got)
	}
}

func TestBuildOptions_HugeSize(t *testing.T) {
	spec := shell.WindowSpec{
		Target: shell.Target{Kind: shell.TargetLocal, Location: "index.html"},
		Width:  1e300,
		Height: 600,
	}

	opts, err := BuildOptions(spec, AppOptions{Assets: bundle}, nil)
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}
	if opts.Width != maxDimension || opts.Height != 600 {
		t.Errorf("size = %dx%d", opts.Width, opts.Height)
	}
}
