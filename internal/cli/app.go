// Package cli wires configuration, logging and theming for the tvfocus
// commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/tvfocus/internal/cli/styles"
	"github.com/bnema/tvfocus/internal/domain/build"
	"github.com/bnema/tvfocus/internal/infrastructure/config"
	"github.com/bnema/tvfocus/internal/logging"
)

const logDirPerm = 0o755

// Options are the root command flags that shape the App.
type Options struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	// LogToFile sends logs to the configured log file instead of stderr.
	// Full-screen commands set it because the terminal belongs to the UI.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Configs   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger
	LogFile   string

	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads configuration and sets up logging.
func NewApp(opts Options) (*App, error) {
	var mgrOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		mgrOpts = append(mgrOpts, config.WithConfigFile(opts.ConfigFile))
	}
	// Quiet until the real logger exists.
	mgrOpts = append(mgrOpts, config.WithLogger(zerolog.Nop()))

	mgr, err := config.NewManager(mgrOpts...)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.DefaultConfig()
	logCfg.TimeFormat = "15:04:05"
	logCfg.Level = logging.ParseLevel(firstNonEmpty(opts.LogLevel, cfg.Logging.Level))
	logCfg.Format = firstNonEmpty(opts.LogFormat, cfg.Logging.Format)

	app := &App{
		Config:  cfg,
		Configs: mgr,
		Theme:   styles.NewTheme(),
	}

	if opts.LogToFile || cfg.Logging.File != "" {
		path, err := logFilePath(cfg)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := logging.OpenFile(path)
		if err != nil {
			return nil, err
		}
		logCfg.Output = f
		app.logCloser = f
		app.LogFile = path
	}

	app.Logger = logging.New(logCfg)
	app.ctx = logging.WithContext(context.Background(), app.Logger)
	mgr.SetLogger(app.Logger)

	app.Logger.Debug().
		Str("config_file", mgr.ConfigFileUsed()).
		Str("log_file", app.LogFile).
		Msg("cli initialized")

	return app, nil
}

// Context returns a context carrying the app logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

func logFilePath(cfg *config.Config) (string, error) {
	if cfg.Logging.File != "" {
		return cfg.Logging.File, nil
	}
	return config.GetLogFile()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
