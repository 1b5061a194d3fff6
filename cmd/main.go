package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/alterach/toko-kopi-khaleed/internal/api"
	"github.com/alterach/toko-kopi-khaleed/internal/checkout"
	"github.com/alterach/toko-kopi-khaleed/internal/config"
	"github.com/alterach/toko-kopi-khaleed/internal/consumer"
	"github.com/alterach/toko-kopi-khaleed/internal/repository"
	"github.com/alterach/toko-kopi-khaleed/internal/service"
	"github.com/alterach/toko-kopi-khaleed/internal/sharding"
	"github.com/alterach/toko-kopi-khaleed/migrations"
)

func connectDBEnv(cfg config.Config) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", cfg.DSN())
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Info().Msgf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Warn().Msgf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDBEnv(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to catalog database")
	}
	defer db.Close()

	if err := migrations.AutoMigrateProducts(3, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate products table")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	loc := cfg.Location()
	locks := sharding.NewSessionLocks(sharding.NewShardRouter(cfg.LockStripes))
	state := repository.NewStateRepository(rdb, cfg.StateTTL)

	productRepo := repository.NewProductRepository(db)
	catalogService := service.NewCatalogService(productRepo, rdb, cfg.CatalogCacheTTL)
	cartService := service.NewCartService(state, locks)
	favoriteService := service.NewFavoriteService(state, locks)
	themeService := service.NewThemeService(state, locks, loc, nil)
	composer := checkout.NewComposer(cfg.WhatsAppNumber, loc, nil)
	checkoutService := service.NewCheckoutService(cartService, composer, rdb)
	authService := service.NewAuthService(service.NewJWTSessionProvider(cfg.JWTSecret, rdb, nil))

	handlers := &api.Handlers{
		Product:  api.NewProductHandler(catalogService),
		Cart:     api.NewCartHandler(cartService),
		Favorite: api.NewFavoriteHandler(favoriteService),
		Theme:    api.NewThemeHandler(themeService),
		Checkout: api.NewCheckoutHandler(checkoutService),
		Auth:     api.NewAuthHandler(authService),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// consumer
	reader := config.NewKafkaReader(cfg.KafkaBrokers, cfg.ProductTopic, cfg.ConsumerGroup)
	productConsumer := consumer.NewConsumer(reader, catalogService)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		productConsumer.Start(ctx)
	}()

	e := echo.New()
	e.HideBanner = true

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimit),
				Burst:     cfg.RateBurst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.RealIP(), nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, api.SessionHeader, "Idempotent-Key"},
		ExposeHeaders:    []string{api.SessionHeader},
		AllowCredentials: false,
	}))
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	handlers.Register(e)

	go func() {
		if err := catalogService.PreWarmCache(ctx); err != nil {
			log.Warn().Err(err).Msg("Catalog cache warm-up failed")
		}
	}()

	go func() {
		log.Info().Msgf("Server starting on port %s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	cancel()
	<-consumerDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
