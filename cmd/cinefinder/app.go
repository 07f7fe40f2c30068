package main

import (
	"context"
	"fmt"

	"github.com/amaumene/cinefinder/internal/cache"
	"github.com/amaumene/cinefinder/internal/config"
	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/database"
	"github.com/amaumene/cinefinder/internal/handlers"
	"github.com/amaumene/cinefinder/internal/metrics"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/internal/services"
	"github.com/amaumene/cinefinder/internal/state"
	"github.com/amaumene/cinefinder/pkg/httputil"
	"github.com/amaumene/cinefinder/pkg/logger"
	"github.com/amaumene/cinefinder/pkg/ratelimiter"
)

type app struct {
	cfg       *config.Config
	logger    logger.Logger
	container *services.Container
	handler   *handlers.Handler
}

func InitializeLogger(cfg *config.Config) logger.Logger {
	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if cfg.LogLevel != "" && !logger.ValidLevel(cfg.LogLevel) {
		log.Warnf("[App] unknown log level '%s', defaulting to info", cfg.LogLevel)
	}
	return log
}

// InitializeDatabase opens the favorites blob store for the configured
// backend.
func InitializeDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (database.BlobStore, error) {
	switch cfg.StoreBackend {
	case constants.StoreBackendRedis:
		store, err := database.NewRedis(ctx, cfg.RedisURL, constants.AppName+":")
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Infof("[App] redis store initialized")
		return store, nil
	default:
		store, err := database.NewBolt(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", cfg.DatabasePath, err)
		}
		log.Infof("[App] bolt store initialized at %s", cfg.DatabasePath)
		return store, nil
	}
}

func InitializeServices(ctx context.Context, cfg *config.Config, store database.BlobStore, log logger.Logger) (*services.Container, error) {
	favorites, err := state.NewFavorites(ctx, store, log)
	if err != nil {
		return nil, err
	}
	metrics.Favorites.Set(float64(favorites.Len()))

	genreCache := cache.New[[]models.Genre](cfg.CacheSize, cfg.CacheTTLDuration())
	tmdb := services.NewTMDB(services.TMDBOptions{
		BaseURL:        cfg.TMDBBaseURL,
		Token:          cfg.TMDBToken,
		APIKey:         cfg.TMDBAPIKey,
		Language:       cfg.TMDBLanguage,
		DetailLanguage: cfg.TMDBDetailLanguage,
		HTTPClient:     httputil.NewHTTPClient(cfg.Timeout()),
		RateLimiter:    ratelimiter.NewTokenBucket(constants.TMDBRateBurst, constants.TMDBRateLimit),
		GenreCache:     genreCache,
		Logger:         log,
	})

	sessions := state.NewSessions(favorites, constants.SessionIdleTTL, log)

	container := services.NewContainer(tmdb, favorites, sessions, log)
	container.Store = store
	container.GenreCache = genreCache

	log.Infof("[App] services initialized successfully")
	return container, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := InitializeLogger(cfg)

	store, err := InitializeDatabase(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	container, err := InitializeServices(ctx, cfg, store, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    log,
		container: container,
		handler:   handlers.New(container),
	}, nil
}

// close releases the favorites store.
func (a *app) close() {
	if err := a.container.Store.Close(); err != nil {
		a.logger.Errorf("[App] failed to close store: %v", err)
	}
}

// startSweepers runs the periodic cleanup of idle sessions and expired
// cache entries until ctx is done.
func (a *app) startSweepers(ctx context.Context) {
	a.container.Sessions.StartSweeper(ctx, constants.SweepInterval)
	a.container.GenreCache.StartCleanup(ctx, constants.SweepInterval)
}
