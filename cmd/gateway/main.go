package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/NeuralTrust/TrustModeration/pkg/app/auditlog"
	"github.com/NeuralTrust/TrustModeration/pkg/app/moderation"
	"github.com/NeuralTrust/TrustModeration/pkg/config"
	domainAuditlog "github.com/NeuralTrust/TrustModeration/pkg/domain/auditlog"
	domainModeration "github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	handlers "github.com/NeuralTrust/TrustModeration/pkg/handlers/http"
	infraCache "github.com/NeuralTrust/TrustModeration/pkg/infra/cache"
	classifierCache "github.com/NeuralTrust/TrustModeration/pkg/infra/classifier/cache"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/classifier/huggingface"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/classifier/openai"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/database"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/httpx"
	infraLogger "github.com/NeuralTrust/TrustModeration/pkg/infra/logger"
	_ "github.com/NeuralTrust/TrustModeration/pkg/infra/migrations"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/repository"
	"github.com/NeuralTrust/TrustModeration/pkg/infra/repository/memory"
	"github.com/NeuralTrust/TrustModeration/pkg/middleware"
	"github.com/NeuralTrust/TrustModeration/pkg/server"
	"github.com/NeuralTrust/TrustModeration/pkg/server/router"
	"github.com/NeuralTrust/TrustModeration/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = infraLogger.DefaultLogFile
	}
	appLogger, err := infraLogger.NewLogger(infraLogger.Options{
		Level:   os.Getenv("LOG_LEVEL"),
		File:    logFile,
		Console: !strings.EqualFold(os.Getenv("LOG_CONSOLE"), "false"),
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger := appLogger.Logger
	logger.WithField("version", version.GetInfo().String()).Info("starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config"
	}
	if err := config.Load(configPath); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	if cfg.Metrics.Enabled {
		prometheus.Initialize()
	}

	repo, closeRepo := initializeRepository(logger, cfg)
	defer closeRepo()

	textClassifier, closeCache := initializeTextClassifier(logger, cfg)
	defer closeCache()
	imageClassifier := initializeImageClassifier(logger, cfg)

	// services
	moderator := moderation.NewModerator(logger, textClassifier, imageClassifier, repo, cfg.Classifiers.Timeout)
	auditService := auditlog.NewService(logger, repo)

	// middleware
	middlewareTransport := &middleware.Transport{
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware:         middleware.NewCORSGlobalMiddleware(cfg.Server.CORSOrigins, "600"),
	}

	// Handler Transport
	handlerTransport := &handlers.HandlerTransport{
		// Moderation
		ModerateTextHandler:     handlers.NewModerateTextHandler(logger, moderator),
		ModerateImageHandler:    handlers.NewModerateImageHandler(logger, moderator),
		ModerateCombinedHandler: handlers.NewModerateCombinedHandler(logger, moderator),
		// Audit log
		ReviewFeedbackHandler:     handlers.NewReviewFeedbackHandler(logger, auditService),
		GetModerationLogHandler:   handlers.NewGetModerationLogHandler(logger, auditService),
		ListModerationLogsHandler: handlers.NewListModerationLogsHandler(logger, auditService),
		// System
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewModerationServer(server.ModerationServerDI{
		Config:  cfg,
		Logger:  logger,
		Routers: []router.ServerRouter{router.NewModerationRouter(middlewareTransport, handlerTransport)},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		return
	}
	logger.Info("server gracefully stopped")
}

func initializeRepository(logger *logrus.Logger, cfg *config.Config) (domainAuditlog.Repository, func()) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("using in-memory moderation log; entries are lost on restart")
		return memory.NewAuditLogRepository(), func() {}
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	return repository.NewAuditLogRepository(db.DB), func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}
}

func initializeTextClassifier(logger *logrus.Logger, cfg *config.Config) (domainModeration.TextClassifier, func()) {
	breaker := httpx.NewCircuitBreaker(
		openai.ClassifierName,
		cfg.Classifiers.BreakerTimeout,
		cfg.Classifiers.BreakerMaxFailures,
		httpx.WithStateLogger(logger),
	)
	classifier := openai.NewTextClassifier(logger, breaker, openai.Config{
		APIKey:  cfg.Classifiers.OpenAI.APIKey,
		BaseURL: cfg.Classifiers.OpenAI.BaseURL,
		Model:   cfg.Classifiers.OpenAI.Model,
	})

	if !cfg.Redis.Enabled {
		return classifier, func() {}
	}

	client, err := infraCache.NewClient(infraCache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, text results will not be cached")
		return classifier, func() {}
	}
	logger.WithField("ttl", cfg.Redis.TTL.String()).Info("caching text classifications in redis")

	cached := classifierCache.NewCachedTextClassifier(logger, classifier, client, cfg.Redis.TTL)
	return cached, func() {
		if err := client.Close(); err != nil {
			logger.WithError(err).Warn("failed to close redis client")
		}
	}
}

func initializeImageClassifier(logger *logrus.Logger, cfg *config.Config) domainModeration.ImageClassifier {
	url := cfg.Classifiers.Image.URL
	if url == "" {
		url = huggingface.ModelURL(cfg.Classifiers.Image.Model)
	}

	timeout := cfg.Classifiers.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	breaker := httpx.NewCircuitBreaker(
		huggingface.ClassifierName,
		cfg.Classifiers.BreakerTimeout,
		cfg.Classifiers.BreakerMaxFailures,
		httpx.WithStateLogger(logger),
	)
	return huggingface.NewImageClassifier(
		logger,
		httpx.NewFastHTTPClient(
			httpx.WithTimeout(timeout),
			httpx.WithUserAgent(version.AppName+"/"+version.Version),
		),
		breaker,
		huggingface.Config{URL: url, APIKey: cfg.Classifiers.Image.APIKey},
	)
}
