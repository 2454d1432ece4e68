package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/flag-quiz/internal/config"
	"github.com/gokatarajesh/flag-quiz/internal/country"
	"github.com/gokatarajesh/flag-quiz/internal/country/external"
	"github.com/gokatarajesh/flag-quiz/internal/db/repository"
	"github.com/gokatarajesh/flag-quiz/internal/flags"
	"github.com/gokatarajesh/flag-quiz/internal/game"
	"github.com/gokatarajesh/flag-quiz/internal/logging"
	"github.com/gokatarajesh/flag-quiz/internal/quiz"
	"github.com/gokatarajesh/flag-quiz/internal/quiz/distractor"
	"github.com/gokatarajesh/flag-quiz/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps logger, reference data, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	catalog, err := loadCatalog(ctx, cfg.Data, logger)
	if err != nil {
		return nil, err
	}

	raw, err := flags.LoadRaw(cfg.Data.AttributesFile)
	if err != nil {
		return nil, fmt.Errorf("load flag attributes: %w", err)
	}
	index := flags.NewResolver(cfg.Data.Locale).Resolve(catalog.All(), raw)
	logger.Info().
		Int("countries", catalog.Len()).
		Int("attributed", len(index)).
		Int("attribute_entries", len(raw)).
		Msg("reference data loaded")

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN()+" pool_max_conns=10")
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	settingsRepo := repository.NewSettingsRepository(repository.New(pool))
	planStore := game.NewRedisPlanStore(redisClient, cfg.Game.PlanTTL)
	planner := quiz.NewPlanner(distractor.NewSelector(distractor.SystemRand()))

	gameSvc := game.NewService(
		catalog,
		index,
		planner,
		planStore,
		settingsRepo,
		game.NewMetrics(registry),
		game.ServiceOptions{
			Defaults: quiz.Settings{
				MaxRounds:      cfg.Game.DefaultMaxRounds,
				OptionCount:    cfg.Game.DefaultOptionCount,
				HighDifficulty: cfg.Game.DefaultHighDifficulty,
			},
			SimilarCount: cfg.Game.SimilarCount,
		},
		logger,
	)
	gameHandlers := game.NewHTTPHandlers(gameSvc, logger)

	deps := map[string]server.Pinger{
		"postgres": pool,
		"redis": server.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}),
	}
	handler := server.NewHandler(logger, registry, deps, gameHandlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   server.NewHTTPServer(cfg.HTTPAddr, handler),
	}, nil
}

func loadCatalog(ctx context.Context, cfg config.Data, logger zerolog.Logger) (*country.Catalog, error) {
	var src country.Source
	if cfg.CountriesFile != "" {
		src = country.FileSource{Path: cfg.CountriesFile}
		logger.Info().Str("file", cfg.CountriesFile).Msg("loading countries from file")
	} else {
		src = external.NewRestCountriesClient(cfg.CountriesURL, nil)
		logger.Info().Str("url", cfg.CountriesURL).Msg("fetching countries")
	}

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	catalog, err := country.LoadCatalog(fetchCtx, src, cfg.ExcludedCodes)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	return catalog, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
