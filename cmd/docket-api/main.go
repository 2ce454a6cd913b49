package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	"go.uber.org/zap"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/docketwatch/docket-api/api/swagger"
	"github.com/docketwatch/docket-api/internal/fetch"
	"github.com/docketwatch/docket-api/internal/handler"
	"github.com/docketwatch/docket-api/internal/middleware"
	"github.com/docketwatch/docket-api/internal/repository"
	"github.com/docketwatch/docket-api/internal/service"
	"github.com/docketwatch/docket-api/pkg/cache"
	"github.com/docketwatch/docket-api/pkg/config"
	"github.com/docketwatch/docket-api/pkg/database"
	"github.com/docketwatch/docket-api/pkg/logger"
	corsmiddleware "github.com/docketwatch/docket-api/pkg/middleware/cors"
	reqidmiddleware "github.com/docketwatch/docket-api/pkg/middleware/requestid"
	"github.com/docketwatch/docket-api/pkg/storage"
)

// @title Docket API
// @version 0.1.0
// @description Supreme Court docket status derivation and conference reporting
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close()
	docketRepo := repository.NewDocketRepository(db)

	docketSvc := service.NewDocketService(docketRepo, cacheRepo, metricsSvc, logr,
		service.DocketServiceConfig{CacheTTL: cfg.Dockets.CacheTTL, DataRoot: cfg.Dockets.DataRoot})
	conferenceSvc := service.NewConferenceService(docketRepo, cacheRepo, metricsSvc, logr,
		service.ConferenceServiceConfig{CacheTTL: cfg.Conference.CacheTTL})
	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		AdminUser:         cfg.Auth.AdminUser,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	pipelineSvc := service.NewPipelineService(logr, service.PipelineServiceConfig{DataRoot: cfg.Dockets.DataRoot})

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		store, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
		exportSvc = service.NewExportService(store, signer, service.ExportConfig{
			APIPrefix: cfg.APIPrefix,
			ResultTTL: cfg.Exports.SignedURLTTL,
		}, logr, nil, nil)
		go exportCleanupLoop(exportSvc, cfg.Exports.CleanupInterval, logr)
	}

	var ingestSvc *service.IngestService
	if cfg.Ingest.Enabled {
		fetcher := fetch.NewClient(cfg.Ingest.BaseURL, cfg.Ingest.RequestTimeout, logr)
		ingestSvc = service.NewIngestService(fetcher, docketSvc, validate, logr, service.IngestServiceConfig{
			DataRoot:          cfg.Dockets.DataRoot,
			WorkerConcurrency: cfg.Ingest.WorkerConcurrency,
			WorkerRetries:     cfg.Ingest.WorkerRetries,
		})
		ingestSvc.Start(context.Background())
		defer ingestSvc.Stop()
	}

	authHandler := handler.NewAuthHandler(authSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	docketHandler := handler.NewDocketHandler(docketSvc)
	conferenceHandler := handler.NewConferenceHandler(conferenceSvc, exportSvc)
	pipelineHandler := handler.NewPipelineHandler(pipelineSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/dockets/:docket", docketHandler.Status)
	api.GET("/dockets/:docket/events", docketHandler.Events)
	api.GET("/dockets/:docket/conference/:date", docketHandler.ConferenceAction)
	api.GET("/conferences/:date", conferenceHandler.Report)
	api.GET("/conferences/:date/export", conferenceHandler.Export)
	api.GET("/terms/:term/conferences", conferenceHandler.Dates)
	api.GET("/exports/:token", conferenceHandler.Download)
	api.GET("/system/metrics", metricsHandler.Snapshot)
	api.POST("/pipeline/run", middleware.JWT(authSvc), pipelineHandler.Run)

	if ingestSvc != nil {
		ingestHandler := handler.NewIngestHandler(ingestSvc)
		api.POST("/ingest", middleware.JWT(authSvc), ingestHandler.Ingest)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func exportCleanupLoop(exports *service.ExportService, interval time.Duration, logr *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		removed, err := exports.Cleanup(0)
		if err != nil {
			logr.Warn("export cleanup failed", zap.Error(err))
			continue
		}
		if len(removed) > 0 {
			logr.Info("expired exports removed", zap.Int("count", len(removed)))
		}
	}
}
