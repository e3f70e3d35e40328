package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/specialistvlad/dfarun/internal/config"
)

// ErrChecksFailed is returned by Run in check mode when any document fails.
var ErrChecksFailed = errors.New("one or more DFA documents failed their checks")

// Loader finds and loads DFA documents.
type Loader interface {
	config.Loader
	Find(path string) ([]string, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader Loader
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to errW, so each App has its own isolated logger.
func NewApp(outW, errW io.Writer, cfg *Config, loader Loader) *App {
	if loader == nil {
		panic("app: nil loader")
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) load(ctx context.Context, path string) (*config.Document, error) {
	doc, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Document loaded.", "source", doc.Source, "states", len(doc.States), "transitions", len(doc.Transitions))
	return doc, nil
}
