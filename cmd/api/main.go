// @title           Meeting Roulette API
// @version         1.0
// @description     점심 모임 및 음식점 룰렛 API

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"meeting-roulette-api/internal/client"
	"meeting-roulette-api/internal/config"
	"meeting-roulette-api/internal/database"
	"meeting-roulette-api/internal/job"
	"meeting-roulette-api/internal/metrics"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Meeting Roulette Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database (실패해도 앱은 시작됨 - pod 생존 보장)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("⚠️  Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		// 백그라운드에서 DB 연결 재시도 (5초 간격)
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		// Run auto migration (DB 연결된 경우만)
		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.New()
	logger.Info("Metrics initialized")

	// Initialize Redis (실패 시 캐시 없이 동작)
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, caching disabled", zap.Error(err))
	}

	// Initialize notification client
	var notiClient client.NotificationClient
	if cfg.Noti.BaseURL != "" {
		notiClient = client.NewNotificationClient(
			cfg.Noti.BaseURL,
			cfg.Noti.APIKey,
			cfg.Noti.Timeout,
			logger,
			m,
		)
		logger.Info("Notification client initialized",
			zap.String("noti_service_url", cfg.Noti.BaseURL),
		)
	} else {
		notiClient = client.NewNoOpNotificationClient()
		logger.Warn("Notification service URL not configured, notifications disabled")
	}

	// DB metrics and background jobs (DB 연결된 경우만)
	var dbStatsDone chan struct{}
	var businessCollector *metrics.BusinessMetricsCollector
	var scheduler *cron.Cron
	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		dbStatsDone = database.StartDBStatsCollector(db, m)

		businessCollector = metrics.NewBusinessMetricsCollector(db, m, logger)
		businessCollector.Start()

		// 매시 정각에 모임 상태 전환
		meetingRepo := repository.NewMeetingRepository(db)
		closeJob := job.NewMeetingCloseJob(meetingRepo, logger)
		scheduler = cron.New()
		if _, err := scheduler.AddJob("0 * * * *", closeJob); err != nil {
			logger.Error("Failed to schedule meeting close job", zap.Error(err))
		} else {
			scheduler.Start()
			logger.Info("Meeting close job scheduled")
		}
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		RedisClient: database.GetRedis(),
		Logger:      logger,
		JWTSecret:   cfg.JWT.Secret,
		BasePath:    cfg.Server.BasePath,
		Metrics:     m,
		NotiClient:  notiClient,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Meeting Roulette Service started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Stop background workers before closing the server
	if scheduler != nil {
		scheduler.Stop()
	}
	if businessCollector != nil {
		businessCollector.Stop()
	}
	if dbStatsDone != nil {
		close(dbStatsDone)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
