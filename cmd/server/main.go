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

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/cache"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/config"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	h "github.com/luckkalpna/Vibe-Commerce-Cart/internal/http"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/publisher"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/repository"
	s "github.com/luckkalpna/Vibe-Commerce-Cart/internal/service"
	"github.com/luckkalpna/Vibe-Commerce-Cart/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		return err
	}
	defer disconnect(mongoDB, log)
	log.Info("connected to MongoDB", zap.String("db", cfg.MongoDBName))

	products, closeProducts, err := newProductRepository(cfg, mongoDB)
	if err != nil {
		return err
	}
	defer closeProducts()
	log.Info("catalog backend ready", zap.String("backend", cfg.CatalogBackend))

	cartCache, closeCache, err := newCartCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	var pub publisher.CheckoutPublisher = publisher.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		pub = publisher.NewKafkaPublisher(cfg.KafkaTopic, log, cfg.KafkaBrokers...)
		log.Info("publishing checkout events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn("publisher close error", zap.Error(err))
		}
	}()

	catalog := s.NewCatalogService(products, log)
	if cfg.SeedCatalog {
		if _, err := catalog.SeedIfEmpty(ctx, s.DefaultCatalog); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	cartID := domain.CartID(cfg.CartID)
	carts := s.NewCartService(repository.NewMongoCartRepository(mongoDB), catalog, cartCache, log)
	if _, err := carts.EnsureCart(ctx, cartID); err != nil {
		return fmt.Errorf("failed to initialise cart: %w", err)
	}
	checkout := s.NewCheckoutService(carts, pub, log)

	router := h.NewRouter(h.RouterConfig{
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
	}, h.Handlers{
		Products: h.NewProductHandler(catalog, cfg.RequestTimeout, log),
		Cart:     h.NewCartHandler(carts, cartID, cfg.RequestTimeout, log),
		Checkout: h.NewCheckoutHandler(checkout, cartID, cfg.RequestTimeout, log),
	}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.HTTPPort), zap.String("cart_id", cfg.CartID))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}

func newProductRepository(cfg *config.Config, db *mongo.Database) (repository.ProductRepository, func(), error) {
	if cfg.CatalogBackend != config.CatalogSQLite {
		return repository.NewMongoProductRepository(db), func() {}, nil
	}

	repo, err := repository.NewSQLiteProductRepository(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	return repo, func() { _ = repo.Close() }, nil
}

func newCartCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.CartCache, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("cart cache disabled")
		return cache.Noop{}, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis connection failed: %w", err)
	}
	log.Info("redis ping succeeded", zap.String("addr", cfg.RedisAddr))

	return cache.NewRedisCache(client), func() { _ = client.Close() }, nil
}

func disconnect(db *mongo.Database, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Warn("mongo disconnect error", zap.Error(err))
	}
}
