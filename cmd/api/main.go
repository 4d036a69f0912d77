package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "product_catalog_backend/internal/http"
	"product_catalog_backend/internal/http/router"
	"product_catalog_backend/internal/products"
	"product_catalog_backend/internal/products/repository"
	"product_catalog_backend/platform/cache"
	"product_catalog_backend/platform/config"
	"product_catalog_backend/platform/db"
	"product_catalog_backend/platform/logger"
	"product_catalog_backend/platform/mongodb"
	"product_catalog_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "store", cfg.StoreDriver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	repo, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	if cfg.IsProductCacheEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.GetRedisURL())
		if err != nil {
			log.Warn("product cache disabled, redis unavailable", "error", err)
		} else {
			defer func() { _ = redisClient.Close() }()
			repo = repository.NewCached(repo, redisClient, cfg.GetProductCacheTTL(), log)
			log.Info("product cache enabled", "ttl", cfg.GetProductCacheTTL().String())
		}
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	val := validator.New()
	productsModule, err := products.NewModule(repo, val, log)
	if err != nil {
		log.Error("failed to initialize products module", "error", err)
		panic("failed to initialize products module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Health:  repo,
		Modules: []apphttp.Module{productsModule},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// openStore connects the configured product store and returns it with its closer.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Repository, func()) {
	switch cfg.GetStoreDriver() {
	case config.StoreDriverPostgres:
		var pool *pgxpool.Pool
		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			log.Error("failed to connect to database", "error", err)
			panic("failed to connect to database: " + err.Error())
		}
		log.Info("database connection established")

		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, pool)
		}); err != nil {
			pool.Close()
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")

		return repository.NewPostgres(pool), pool.Close

	default:
		var client *mongo.Client
		if err := withRetry(ctx, log, "mongodb connection", 5, 2*time.Second, func() error {
			c, err := mongodb.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			client = c
			return nil
		}); err != nil {
			log.Error("failed to connect to mongodb", "error", err)
			panic("failed to connect to mongodb: " + err.Error())
		}
		log.Info("mongodb connection established", "database", cfg.GetMongoDatabase(), "collection", cfg.GetMongoCollection())

		repo := repository.NewMongo(mongodb.Collection(client, cfg))
		if err := withRetry(ctx, log, "mongodb indexes", 3, time.Second, func() error {
			return repo.EnsureIndexes(ctx)
		}); err != nil {
			log.Warn("failed to ensure product indexes", "error", err)
		}

		return repo, func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
