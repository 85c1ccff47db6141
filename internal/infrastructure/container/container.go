package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/spiritatlas-backend/internal/config"
	"github.com/gdugdh24/spiritatlas-backend/internal/delivery/http"
	"github.com/gdugdh24/spiritatlas-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/spiritatlas-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/spiritatlas-backend/internal/infrastructure/database"
	"github.com/gdugdh24/spiritatlas-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/spiritatlas-backend/internal/infrastructure/server"
	"github.com/gdugdh24/spiritatlas-backend/internal/infrastructure/telemetry"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository/memory"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository/rediscache"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository/sqlstore"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/auth"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/match"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/profile"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/report"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	DB      *sqlx.DB
	Redis   *redis.Client
	Tracing *sdktrace.TracerProvider
	Gemini  *gemini.GeminiClient
	Metrics *compatibility.Metrics
	Engine  *compatibility.Engine
	Reports *report.ReportUseCase
	Server  *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (_ *Container, err error) {
	c := &Container{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()

	profileRepo, reportStore, err := c.initStorage()
	if err != nil {
		return nil, err
	}
	reportCache, err := c.initCache()
	if err != nil {
		return nil, err
	}

	c.Metrics = compatibility.NewMetrics()
	observer := compatibility.Observers{c.Metrics, compatibility.NewLogObserver(logger)}
	if cfg.Tracing.Enabled() {
		tp, err := telemetry.NewTracerProvider(context.Background(), &cfg.Tracing)
		if err != nil {
			return nil, err
		}
		c.Tracing = tp
		observer = append(observer, telemetry.NewTraceObserver(tp))
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)
	}
	catalog := compatibility.DefaultCatalog()
	c.Engine = compatibility.NewEngine(
		compatibility.WithMinAccuracy(cfg.Engine.MinAccuracy),
		compatibility.WithCatalog(catalog),
		compatibility.WithObserver(observer),
		compatibility.WithLogger(logger),
	)

	reportOpts := []report.Option{
		report.WithCacheRecorder(c.Metrics),
		report.WithLogger(logger),
	}
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey, logger)
		if err != nil {
			// Don't fail, just continue without AI features
			logger.Warn("failed to initialize gemini client", "error", err)
		} else {
			c.Gemini = geminiClient
			reportOpts = append(reportOpts, report.WithExplainer(geminiClient))
		}
	}

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(profileRepo, reportCache, profile.WithLogger(logger))
	c.Reports = report.NewReportUseCase(c.Engine, profileRepo, reportCache, reportStore, reportOpts...)
	matchUseCase := match.NewMatchUseCase(c.Engine, profileRepo,
		match.WithWorkers(cfg.Engine.MatchWorkers),
		match.WithObserver(observer),
		match.WithLogger(logger),
	)

	// Initialize middleware; authentication is off without a secret
	var verifier middleware.TokenVerifier
	if cfg.JWT.AccessSecret != "" {
		verifier = auth.NewTokenService(cfg.JWT.AccessSecret, auth.DefaultTokenTTL)
	}

	router := http.NewRouter(
		handler.NewProfileHandler(profileUseCase, logger),
		handler.NewCompatibilityHandler(c.Reports, logger),
		handler.NewMatchHandler(matchUseCase, cfg.Engine.MatchMinScore, logger),
		handler.NewEngineHandler(c.Metrics),
		handler.NewContentHandler(catalog),
		middleware.NewAuthMiddleware(verifier),
		logger,
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)
	return c, nil
}

func (c *Container) initStorage() (repository.ProfileRepository, repository.ReportStore, error) {
	var (
		db  *sqlx.DB
		err error
	)
	switch c.Config.Storage.Type {
	case config.StorageMemory:
		return memory.NewProfileRepository(), memory.NewReportStore(), nil
	case config.StorageSQLite:
		db, err = database.NewSQLiteDB(c.Config.Storage.Path)
	case config.StoragePostgres:
		db, err = database.NewPostgresDB(&c.Config.Database)
	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", c.Config.Storage.Type)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c.DB = db

	if err := sqlstore.EnsureSchema(context.Background(), db); err != nil {
		return nil, nil, err
	}
	c.Logger.Info("storage ready", "type", c.Config.Storage.Type)
	return sqlstore.NewProfileRepository(db), sqlstore.NewReportStore(db), nil
}

func (c *Container) initCache() (repository.ReportCache, error) {
	if c.Config.Cache.Type != config.CacheRedis {
		return memory.NewReportCache(), nil
	}
	client, err := database.NewRedisClient(&c.Config.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	c.Redis = client
	c.Logger.Info("report cache ready", "type", "redis", "ttl", c.Config.Cache.TTL)
	return rediscache.NewReportCache(client, c.Config.Cache.TTL), nil
}

// Close closes all connections
func (c *Container) Close() error {
	var errs []error
	if c.Gemini != nil {
		c.Gemini.Close()
	}
	if c.Tracing != nil {
		if err := c.Tracing.Shutdown(context.Background()); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush traces: %w", err))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
