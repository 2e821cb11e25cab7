package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/danielblac/tmech-invoice/internal/config"
	"github.com/danielblac/tmech-invoice/internal/pdf"
	"github.com/danielblac/tmech-invoice/internal/service"
	"github.com/danielblac/tmech-invoice/internal/store"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Log    zerolog.Logger

	Store store.RecordStore

	// Services
	Session   *service.EditSession
	Totals    *service.TotalsCalculator
	Formatter *service.Formatter
	PDF       *pdf.Generator

	logFile *os.File
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Opening the log file
// 3. Opening the record store and loading the canonical record
// 4. Creating services
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Log to file; the terminal stays clean for the document itself
	log, logFile := newLogger(cfg.Storage.LogPath)

	st := store.NewFileStore(cfg.Storage.Path, log)

	// The persisted-state read happens exactly once, before first display
	rec, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	totals := service.NewTotalsCalculator(cfg.Totals)
	formatter := service.NewFormatter(cfg.Currency)
	session := service.NewEditSession(rec, st, log)
	generator := pdf.New(cfg.Business, totals, formatter)

	return &App{
		Config:    cfg,
		Log:       log,
		Store:     st,
		Session:   session,
		Totals:    totals,
		Formatter: formatter,
		PDF:       generator,
		logFile:   logFile,
	}, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// newLogger opens the debug log. A log path that cannot be opened is not
// fatal; logging just goes nowhere.
func newLogger(path string) (zerolog.Logger, *os.File) {
	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			if file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				w = file
				f = file
			}
		}
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return log, f
}
