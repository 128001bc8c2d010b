package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yashrajoria/shop-service/internal/config"
	"github.com/yashrajoria/shop-service/internal/database"
	"github.com/yashrajoria/shop-service/internal/events"
	"github.com/yashrajoria/shop-service/internal/logger"
	"github.com/yashrajoria/shop-service/internal/middleware"
	"github.com/yashrajoria/shop-service/internal/routes"
	"github.com/yashrajoria/shop-service/internal/session"
	aws_pkg "github.com/yashrajoria/shop-service/pkg/aws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load failed: " + err.Error())
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	for _, w := range cfg.Warnings {
		log.Warn("Config warning", zap.String("detail", w))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database ---
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("DB connection failed", zap.Error(err))
	}

	// --- Sessions ---
	var sessions session.Store
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Fatal("Redis connection failed", zap.Error(err))
		}
		defer client.Close()
		sessions = session.NewRedisStore(client, cfg.SessionTTL)
		log.Info("Using Redis session store")
	} else {
		mem := session.NewMemoryStore(cfg.SessionTTL, time.Minute)
		defer mem.Close()
		sessions = mem
		log.Info("Using in-memory session store")
	}

	// --- AWS setup (optional) ---
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.ProductSNSTopicARN != "" {
		awsCfg, err := aws_pkg.LoadAWSConfig(context.Background())
		if err != nil {
			log.Warn("AWS config load failed, product events disabled", zap.Error(err))
		} else {
			publisher = events.NewSNSPublisher(aws_pkg.NewSNSClient(awsCfg), cfg.ProductSNSTopicARN)
			log.Info("Publishing product events", zap.String("topic", cfg.ProductSNSTopicARN))
		}
	}

	// Login and register: 20 per minute per IP, bursts of 10.
	limiter := middleware.NewRateLimiter(rate.Every(time.Minute/20), 10, 5*time.Minute)
	defer limiter.Close()

	r := routes.NewRouter(routes.Dependencies{
		Config:    cfg,
		Logger:    log,
		DB:        db,
		Sessions:  sessions,
		Publisher: publisher,
		Limiter:   limiter,
		Metrics:   middleware.NewMetrics("shop-service"),
	})

	// --- HTTP server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Shop Service started", zap.String("port", cfg.Port), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		log.Error("Database close error", zap.Error(err))
	}

	log.Info("Shop Service stopped gracefully")
}
