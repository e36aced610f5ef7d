package main

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"pake/internal/app"
	"pake/internal/config"
	"pake/internal/host"
	"pake/internal/infrastructure/logging"
	"pake/internal/platform"
	"pake/internal/shell"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/appicon.png
var icon []byte

//go:embed build/app.json
var appDoc []byte

//go:embed build/pake.json
var pakeDoc []byte

//go:embed build/pake.js
var bootstrap string

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	windowSpec := flag.String(host.WindowSpecFlag, "", "run a secondary window for this JSON window spec")
	session := flag.String(host.SessionFlag, "", "session id inherited from the launching process")
	flag.Parse()

	if *session == "" {
		*session = uuid.NewString()
	}

	base := logging.NewDefaultLogger()
	if *debug {
		base = logging.NewLogger("debug")
	}
	logger := logging.WithSession(base, *session)
	defer func() {
		if s, ok := base.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
	}()

	cfg, err := config.Load(appDoc, pakeDoc)
	if err != nil {
		fatal(logger, "load_config", err)
	}

	content, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		fatal(logger, "load_assets", err)
	}

	if *windowSpec != "" {
		runSecondary(logger, cfg, content, *windowSpec, *debug)
		return
	}

	application, err := app.NewApp(app.Options{
		Config:    cfg,
		Adapter:   platform.NewAdapter(),
		Bootstrap: bootstrap,
		Icon:      icon,
		Assets:    content,
		Session:   *session,
		Debug:     *debug,
		Logger:    logger,
		HomeDir:   os.UserHomeDir,
	})
	if err != nil {
		fatal(logger, "startup", err)
	}

	opts, err := application.WailsOptions()
	if err != nil {
		fatal(logger, "build_window", err)
	}

	if err := wails.Run(opts); err != nil {
		fatal(logger, "run", err)
	}
}

func runSecondary(logger logging.Logger, cfg *config.Config, content fs.FS, raw string, debug bool) {
	var spec shell.WindowSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		fatal(logger, "decode_window_spec", err)
	}
	logger.Info("Secondary window starting", "window", spec.Label)

	opts, err := app.SecondaryOptions(spec, cfg.App.ProductName, icon, content, debug, logger)
	if err != nil {
		fatal(logger, "build_window", err)
	}
	if err := wails.Run(opts); err != nil {
		fatal(logger, "run", err)
	}
}

func fatal(logger logging.Logger, op string, err error) {
	logging.LogError(logger, err, op, nil)
	platform.ReportFatal("Startup failed", fmt.Sprintf("%s: %v", op, err))
	os.Exit(1)
}
