package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rediscache "dog-walk-service/internal/adapters/cache/redis"
	"dog-walk-service/internal/adapters/events/rabbitmq"
	mem "dog-walk-service/internal/adapters/storage/memory"
	pg "dog-walk-service/internal/adapters/storage/postgres"
	"dog-walk-service/internal/config"
	"dog-walk-service/internal/domain/reputation"
	"dog-walk-service/internal/domain/walks"
	"dog-walk-service/internal/platform/logger"
	"dog-walk-service/internal/router"
	"dog-walk-service/internal/seed"
)

// storeWithSeed es lo que necesita el bootstrap: el store de la app + reseed.
type storeWithSeed interface {
	router.Store
	seed.Reseeder
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store: Postgres si hay DSN, si no in-memory (modo dev)
	var store storeWithSeed
	if cfg.DBDSN != "" {
		if cfg.MigrateOnStart {
			if err := pg.Migrate(cfg.DBDSN); err != nil {
				log.Error("migrations failed", map[string]any{"error": err.Error()})
				return 1
			}
		}
		db, err := pg.Open(cfg.DBDSN, cfg.DBMaxOpenConns)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"error": err.Error()})
			return 1
		}
		defer db.Close()
		store = pg.New(db)
		log.Info("using postgres store", nil)
	} else {
		store = mem.NewStore()
		log.Info("using in-memory store", nil)
	}

	// Cache de resúmenes (opcional)
	var cache reputation.Cache
	if cfg.RedisAddr != "" {
		client, err := rediscache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable, summary cache disabled", map[string]any{"error": err.Error()})
		} else {
			defer client.Close()
			cache = rediscache.NewSummaryCache(client, rediscache.DefaultKey, cfg.SummaryCacheTTL)
		}
	}

	// Eventos a RabbitMQ (opcional)
	var publisher walks.Publisher
	if cfg.AMQPURL != "" {
		p, err := rabbitmq.Dial(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			log.Warn("rabbitmq unavailable, walk events disabled", map[string]any{"error": err.Error()})
		} else {
			defer p.Close()
			publisher = p
		}
	}

	// Seed antes de aceptar tráfico
	if cfg.SeedOnStart {
		f, err := seed.Default(cfg.BcryptCost)
		if err != nil {
			log.Error("build seed fixture failed", map[string]any{"error": err.Error()})
			return 1
		}
		if err := seed.Run(ctx, store, f, log); err != nil {
			log.Error("seed failed", map[string]any{"error": err.Error()})
			return 1
		}
		if cache != nil {
			if err := cache.Invalidate(ctx); err != nil {
				log.Warn("summary cache invalidation failed", map[string]any{"error": err.Error()})
			}
		}
	}

	r := router.NewRouter(router.Options{
		Logger:         log,
		Store:          store,
		Cache:          cache,
		Publisher:      publisher,
		BcryptCost:     cfg.BcryptCost,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
		return 1
	}
	return 0
}
