package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/turmas/internal/app"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
	"github.com/thenoetrevino/turmas/internal/config"
	"github.com/thenoetrevino/turmas/internal/database"
	"github.com/thenoetrevino/turmas/internal/logging"
)

// ErrInitialization wraps every failure to load config or open storage
var ErrInitialization = errors.New("failed to initialize")

type contextKey string

const (
	// AppContextKey carries a prebuilt *app.App (tests inject one this way)
	AppContextKey contextKey = "turmasApp"

	memoryContextKey contextKey = "turmasMemory"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false for an injected App, which the caller closes
	owned bool
	logs  io.Closer
}

// WithApp returns a context that makes GetCLIFromContext use application
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, AppContextKey, application)
}

// WithMemoryStore makes NewCLI use a throwaway in-memory store
func WithMemoryStore(ctx context.Context) context.Context {
	return context.WithValue(ctx, memoryContextKey, true)
}

// GetCLIFromContext returns a CLI around the App injected with WithApp,
// or initializes a new one from config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if application, ok := ctx.Value(AppContextKey).(*app.App); ok && application != nil {
		return &CLI{App: application}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads config, starts logging and opens the configured store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: config: %w", ErrInitialization, err)
	}

	logs, err := logging.Init(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging: %w", ErrInitialization, err)
	}
	styles.Init(cfg.ColorScheme)

	if memory, _ := ctx.Value(memoryContextKey).(bool); memory {
		slog.Debug("using in-memory store")
		return &CLI{
			App:   app.New(database.NewMemoryStore(), app.WithLogger(logging.Logger)),
			owned: true,
			logs:  logs,
		}, nil
	}

	db, err := database.InitDB(ctx, cfg.Storage.Path)
	if err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("%w: database: %w", ErrInitialization, err)
	}
	slog.Debug("database opened", "path", cfg.Storage.Path)

	application := app.New(
		database.NewKVStore(db),
		app.WithCloser(db),
		app.WithLogger(logging.Logger),
	)

	return &CLI{
		App:   application,
		owned: true,
		logs:  logs,
	}, nil
}

// Close cleans up CLI resources. An injected App is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logs != nil {
		err = errors.Join(err, c.logs.Close())
	}
	return err
}
