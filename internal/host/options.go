package host

import (
	"context"
	"io/fs"
	"math"

	"pake/internal/shell"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// Lifecycle holds the Wails callbacks of the application
type Lifecycle struct {
	OnStartup     func(ctx context.Context)
	OnDomReady    func(ctx context.Context)
	OnBeforeClose func(ctx context.Context) bool
	OnShutdown    func(ctx context.Context)
}

// AppOptions is the non-window input to a Wails run
type AppOptions struct {
	ProductName string
	Version     string
	Icon        []byte
	Assets      fs.FS
	Menu        *menu.Menu
	Logger      logger.Logger
	LogLevel    logger.LogLevel
	Lifecycle   Lifecycle
}

// BuildOptions maps a window spec onto the Wails application options
func BuildOptions(spec shell.WindowSpec, in AppOptions, scripts *ScriptInjector) (*options.App, error) {
	server, err := AssetServerOptions(spec, in.Assets, scripts)
	if err != nil {
		return nil, err
	}

	bg := &options.RGBA{R: 255, G: 255, B: 255, A: 255}
	if spec.Transparent {
		bg = &options.RGBA{R: 0, G: 0, B: 0, A: 0}
	}

	app := &options.App{
		Title:            spec.Title,
		Width:            dimension(spec.Width),
		Height:           dimension(spec.Height),
		DisableResize:    !spec.Resizable,
		Fullscreen:       spec.Fullscreen,
		BackgroundColour: bg,
		AssetServer:      server,
		Menu:             in.Menu,
		Logger:           in.Logger,
		LogLevel:         in.LogLevel,
		OnStartup:        in.Lifecycle.OnStartup,
		OnDomReady:       in.Lifecycle.OnDomReady,
		OnBeforeClose:    in.Lifecycle.OnBeforeClose,
		OnShutdown:       in.Lifecycle.OnShutdown,
		WindowStartState: options.Normal,
		Windows: &windows.Options{
			WebviewIsTransparent: spec.Transparent,
			WindowIsTranslucent:  spec.Transparent,
			WebviewUserDataPath:  spec.DataDir,
			ZoomFactor:           1.0,
		},
		Mac: &mac.Options{
			TitleBar:             mac.TitleBarDefault(),
			WebviewIsTransparent: spec.Transparent,
			WindowIsTranslucent:  spec.Transparent,
			About: &mac.AboutInfo{
				Title:   in.ProductName,
				Message: in.Version,
				Icon:    in.Icon,
			},
		},
		Linux: &linux.Options{
			Icon:                in.Icon,
			WindowIsTranslucent: spec.Transparent,
			ProgramName:         in.ProductName,
		},
	}
	if spec.Title == "" {
		app.Mac.TitleBar.HideTitle = true
	}
	return app, nil
}

// maxDimension bounds a window side in logical pixels
const maxDimension = 32768

// dimension rounds a configured logical size to whole pixels within [1, maxDimension]
func dimension(v float64) int {
	switch {
	case math.IsNaN(v) || v < 1:
		return 1
	case v > maxDimension:
		return maxDimension
	}
	return int(math.Round(v))
}
