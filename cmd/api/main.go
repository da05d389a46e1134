package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vidtube/video-platform/internal/api"
	"github.com/vidtube/video-platform/internal/core/service"
	mongoinfra "github.com/vidtube/video-platform/internal/infrastructure/db/mongo"
	redisinfra "github.com/vidtube/video-platform/internal/infrastructure/db/redis"
	"github.com/vidtube/video-platform/internal/infrastructure/queue"
	"github.com/vidtube/video-platform/internal/infrastructure/storage"
	"github.com/vidtube/video-platform/internal/pkg/config"
	"github.com/vidtube/video-platform/pkg/logger"
)

// @title        VidTube API
// @version      1.0
// @description  Video-sharing platform backend: accounts, videos, comments, likes, playlists, subscriptions and channel dashboards.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	files, err := storage.NewMinioStore(storage.Config{
		Endpoint:      cfg.Media.Endpoint,
		AccessKey:     cfg.Media.AccessKey,
		SecretKey:     cfg.Media.SecretKey,
		Bucket:        cfg.Media.Bucket,
		UseSSL:        cfg.Media.UseSSL,
		PublicBaseURL: cfg.Media.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object store connection failed")
	}

	// Watch events flow through a sharded worker pool so view counting never
	// blocks the read path.
	users := mongoinfra.NewUserRepository(db)
	videos := mongoinfra.NewVideoRepository(db)
	watchService := service.NewWatchService(videos, users, log)
	dispatcher := queue.NewDispatcher(0, watchService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, files, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
