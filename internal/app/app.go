package app

import (
	"context"
	"io/fs"
	"time"

	"pake/internal/config"
	"pake/internal/host"
	"pake/internal/infrastructure/logging"
	"pake/internal/platform"
	"pake/internal/shell"
	"pake/internal/tray"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
)

// Options carries everything the shell needs at startup
type Options struct {
	Config    *config.Config
	Adapter   platform.Adapter
	Bootstrap string
	Icon      []byte
	Assets    fs.FS
	Session   string
	Debug     bool
	Logger    logging.Logger
	HomeDir   shell.HomeDirFunc
}

// trayIcon is the system tray presence of the application
type trayIcon interface {
	Start()
	Stop()
}

// App struct represents the main application
type App struct {
	ctx       context.Context
	cfg       *config.Config
	adapter   platform.Adapter
	spec      shell.WindowSpec
	scripts   *host.ScriptInjector
	host      *host.Host
	menu      *shell.MenuDispatcher
	trayCtl   *shell.TrayController
	tray      trayIcon
	icon      []byte
	assets    fs.FS
	debug     bool
	logger    logging.Logger
	startedAt time.Time
}

// NewApp resolves the data directory and the primary window. Every error
// returned here is fatal to the launch.
func NewApp(opts Options) (*App, error) {
	start := time.Now()

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	adapter := opts.Adapter
	if adapter == nil {
		adapter = platform.NewAdapter()
	}

	dataDir, ok, err := shell.ResolveDataDir(adapter, opts.HomeDir, opts.Config.App.ProductName)
	if err != nil {
		logging.LogError(logger, err, "resolve_data_dir", nil)
		return nil, err
	}
	if ok {
		logger.Debug("Data directory ready", "path", dataDir)
	}

	spec, err := shell.NewWindowFactory(adapter, opts.Bootstrap).PrimarySpec(opts.Config.Pake, dataDir)
	if err != nil {
		logging.LogError(logger, err, "primary_spec", nil)
		return nil, err
	}

	scripts := host.NewScriptInjector(spec.InitScript, host.UserAgentScript(spec.UserAgent))
	h := host.New(scripts, opts.Session, logger)

	a := &App{
		cfg:       opts.Config,
		adapter:   adapter,
		spec:      spec,
		scripts:   scripts,
		host:      h,
		menu:      shell.NewMenuDispatcher(h, shell.NewZoomController(adapter), logger),
		trayCtl:   shell.NewTrayController(logger),
		icon:      opts.Icon,
		assets:    opts.Assets,
		debug:     opts.Debug,
		logger:    logger,
		startedAt: start,
	}
	a.tray = tray.New(shell.BuildTray(), opts.Config.App.ProductName, opts.Icon, a.HandleTray, logger)

	logging.LogOperation(logger, "prepare_shell", time.Since(start), map[string]interface{}{
		"platform": adapter.Name(),
		"target":   spec.Target.Location,
		"kind":     string(spec.Target.Kind),
	})
	return a, nil
}

// Spec returns the primary window spec
func (a *App) Spec() shell.WindowSpec {
	return a.spec
}

// WailsOptions builds the options for the primary Wails run
func (a *App) WailsOptions() (*options.App, error) {
	tree := shell.BuildApplicationMenu(a.adapter)
	if !a.adapter.TransparencyGuaranteed() && a.spec.Transparent {
		a.logger.Warn("Transparent window requested; the window manager may ignore it", "platform", a.adapter.Name())
	}

	appMenu := host.BuildMenu(tree, a.HandleMenu, a.HandleNative)
	if a.adapter.Name() == "macos" {
		appMenu = host.AppendEditRole(appMenu)
	}

	return host.BuildOptions(a.spec, host.AppOptions{
		ProductName: a.cfg.App.ProductName,
		Version:     a.cfg.App.Version,
		Icon:        a.icon,
		Assets:      a.assets,
		Menu:        appMenu,
		Logger:      logging.NewWailsLoggerAdapter(a.logger),
		LogLevel:    logLevel(a.debug),
		Lifecycle: host.Lifecycle{
			OnStartup:     a.Startup,
			OnDomReady:    a.DomReady,
			OnBeforeClose: a.BeforeClose,
			OnShutdown:    a.Shutdown,
		},
	}, a.scripts)
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.host.Attach(ctx)
	a.tray.Start()

	a.logger.Info("Application started",
		"product", a.cfg.App.ProductName,
		"platform", a.adapter.Name(),
		"startup_ms", time.Since(a.startedAt).Milliseconds())
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	a.logger.Debug("Content loaded", "window", shell.PrimaryWindowLabel)
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("Starting application shutdown sequence")

	a.tray.Stop()
	a.host.CloseChildren()
	a.host.Detach()

	a.logger.Info("Application shutdown completed")
}

// HandleMenu dispatches an application menu click against the primary window
func (a *App) HandleMenu(id string) {
	_ = a.menu.Handle(id, a.host.Primary())
}

// HandleNative runs an OS-provided menu action
func (a *App) HandleNative(item platform.NativeItem) {
	if err := a.host.RunNative(item); err != nil {
		logging.LogError(a.logger, err, "native_"+string(item), nil)
	}
}

// HandleTray dispatches a tray click
func (a *App) HandleTray(id string) {
	_ = a.trayCtl.Handle(id, a.host)
}

// SecondaryOptions builds the options of a re-executed secondary window
// process. It has no menu and no tray.
func SecondaryOptions(spec shell.WindowSpec, productName string, icon []byte, assets fs.FS, debug bool, log logging.Logger) (*options.App, error) {
	scripts := host.NewScriptInjector(spec.InitScript, host.UserAgentScript(spec.UserAgent))
	return host.BuildOptions(spec, host.AppOptions{
		ProductName: productName,
		Icon:        icon,
		Assets:      assets,
		Logger:      logging.NewWailsLoggerAdapter(log),
		LogLevel:    logLevel(debug),
	}, scripts)
}

func logLevel(debug bool) wailslogger.LogLevel {
	if debug {
		return wailslogger.DEBUG
	}
	return wailslogger.INFO
}
