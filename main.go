// @title GK Group Site API
// @version 1.0
// @description Contact form, newsletter signup and admin review API for the GK Group website.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diljithmon170/GK-Group/admin"
	"github.com/diljithmon170/GK-Group/config"
	"github.com/diljithmon170/GK-Group/db"
	"github.com/diljithmon170/GK-Group/handlers"
	"github.com/diljithmon170/GK-Group/internal/store/postgres"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/middleware"
	"github.com/diljithmon170/GK-Group/router"
	"github.com/diljithmon170/GK-Group/services"
	"github.com/diljithmon170/GK-Group/validation"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() && !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Infow("Starting GK Group site backend",
		"environment", cfg.Server.Environment,
		"version", cfg.Server.Version,
		"database", logger.MaskConnectionString(cfg.Database.URL()))

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg.Database.URL()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	poolConfig, err := config.ConfigurePostgresPool(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to configure database pool: %v", err)
	}
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	cancelConnect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	var redisClient *redis.Client
	var limiter middleware.RateLimiter
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(config.ConfigureRedisOptions(&cfg.Redis))
		defer func() { _ = redisClient.Close() }()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
		if err := config.PingRedis(pingCtx, redisClient, 3, time.Second); err != nil {
			// Rate limiting fails open, so a missing Redis is not fatal.
			log.Warnw("Redis unreachable at startup", "address", cfg.Redis.Address, "error", err)
		}
		cancelPing()
		limiter = services.NewRateLimitService(redisClient)
	} else {
		log.Info("Redis disabled, submission rate limiting is off")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewSubmissionMetrics(registry)

	var notifier services.ContactNotifier
	if cfg.Email.Enabled {
		notifier = services.NewEmailService(&cfg.Email, registry)
	}

	tables, err := admin.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load admin tables: %v", err)
	}

	rules := validation.New(cfg.Validation.StrictEmail)
	contactService := services.NewContactService(rules, postgres.NewContactStore(pool), notifier, metrics)
	newsletterService := services.NewNewsletterService(rules, postgres.NewNewsletterStore(pool), metrics)
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		ContactHandler:    handlers.NewContactHandler(contactService),
		NewsletterHandler: handlers.NewNewsletterHandler(newsletterService),
		AdminHandler:      handlers.NewAdminHandler(contactService, newsletterService, tables),
		HealthHandler:     handlers.NewHealthHandler(healthService),
		RateLimiter:       limiter,
		Gatherer:          registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infow("Shutting down server", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shut down", "error", err)
	}
	log.Info("Server exited")
}
