package app

import (
	"io"
	"log/slog"

	"github.com/thenoetrevino/turmas/internal/database"
	groupservice "github.com/thenoetrevino/turmas/internal/services/group"
	playerservice "github.com/thenoetrevino/turmas/internal/services/player"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct store access)
	repo database.DataStore

	// closer releases the store's resources, if any
	closer io.Closer

	// Service layer (business logic)
	GroupService  groupservice.Service
	PlayerService playerservice.Service
}

// New creates a new App with all services initialized over store.
func New(store database.Store, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	repo := database.NewRepository(store)

	return &App{
		repo:          repo,
		closer:        cfg.closer,
		GroupService:  groupservice.NewService(repo, cfg.logger.With("service", "group")),
		PlayerService: playerservice.NewService(repo, cfg.logger.With("service", "player")),
	}
}

// Repo returns the underlying repository for direct storage access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the resources registered with WithCloser.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
