package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/filmoteca/filmoteca-cli/config"
	"github.com/filmoteca/filmoteca-cli/internal/adapters/api"
	"github.com/filmoteca/filmoteca-cli/internal/adapters/sessionfile"
	"github.com/filmoteca/filmoteca-cli/internal/adapters/sessionredis"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
	"github.com/filmoteca/filmoteca-cli/internal/service"
)

// App holds the wired application graph. Everything hangs off the one shared
// HTTP client and session store.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Sessions ports.SessionStore
	Movies   ports.MovieGateway
	Genres   ports.GenreGateway
	Auth     *service.AuthService

	redisClient *redis.Client
}

// NewApp wires adapters and services from configuration.
func NewApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	sessions, err := app.buildSessionStore(cfg.Session)
	if err != nil {
		return nil, err
	}
	app.Sessions = sessions

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	}, sessions)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	app.Movies = api.NewMovieGateway(client)
	app.Genres = api.NewGenreGateway(client)
	app.Auth = service.NewAuthService(service.AuthServiceOptions{
		Gateway:  api.NewAuthGateway(client),
		Sessions: sessions,
		Logger:   logger,
	})

	return app, nil
}

func (a *App) buildSessionStore(cfg config.SessionConfig) (ports.SessionStore, error) {
	switch cfg.Backend {
	case config.SessionBackendRedis:
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return sessionredis.NewStoreWithKey(a.redisClient, cfg.RedisKey), nil
	case config.SessionBackendFile, "":
		store, err := sessionfile.NewStore(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("create session file store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session backend: %q", cfg.Backend)
	}
}

// Close releases held connections. Safe to call on a partially built App.
func (a *App) Close() error {
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}
