// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/wmiitile/internal/cli/styles"
	"github.com/bnema/wmiitile/internal/domain/build"
	"github.com/bnema/wmiitile/internal/infrastructure/config"
	"github.com/bnema/wmiitile/internal/logging"
	"github.com/bnema/wmiitile/pkg/wmii"
)

// Options controls how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config location when set.
	ConfigFile string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx    context.Context
	logOut io.Closer
}

// NewApp loads the configuration and creates a new CLI application.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerWithFile(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := mgr.Get()
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		ctx:           logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// RedirectLogs sends all further log output to w. If w is also an
// io.Closer it is closed together with the App.
func (a *App) RedirectLogs(w io.Writer) {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(a.Config.Logging.Level)
	cfg.Format = a.Config.Logging.Format
	cfg.Output = w

	a.closeLogs()
	if c, ok := w.(io.Closer); ok {
		a.logOut = c
	}
	a.ctx = logging.WithContext(a.ctx, logging.New(cfg))
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// LayoutOptions derives layout options from the loaded configuration.
func (a *App) LayoutOptions() wmii.Options {
	return LayoutOptions(a.Config)
}

// LayoutOptions derives layout options from cfg.
func LayoutOptions(cfg *config.Config) wmii.Options {
	return wmii.Options{
		Name:         cfg.Layout.Name,
		BorderWidth:  cfg.Layout.BorderWidth,
		Margin:       cfg.Layout.Margin,
		RemovePolicy: cfg.Layout.RemovePolicy,
	}
}

// Screen returns the configured virtual screen.
func (a *App) Screen() wmii.Rect {
	return a.Config.Screen.Rect()
}

// Close releases all resources.
func (a *App) Close() error {
	return a.closeLogs()
}

func (a *App) closeLogs() error {
	if a.logOut == nil {
		return nil
	}
	err := a.logOut.Close()
	a.logOut = nil
	return err
}
