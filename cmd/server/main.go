package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soundvault/catalog-api/internal/api"
	"github.com/soundvault/catalog-api/internal/infrastructure/config"
	mongodb "github.com/soundvault/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/soundvault/catalog-api/internal/infrastructure/db/redis"
	"github.com/soundvault/catalog-api/internal/infrastructure/recommender"
	"github.com/soundvault/catalog-api/internal/reseed"
	"github.com/soundvault/catalog-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- External stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	songRepo := mongodb.NewSongRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	if err := songRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Background reconciliation ---
	reseeder := reseed.NewReseeder(songRepo, userRepo, cfg.Reseed.Interval, log)
	go reseeder.Run(ctx, cfg.Reseed.OnStart)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Songs:     songRepo,
		Users:     userRepo,
		Predictor: recommender.New(),
		Scores:    redisdb.NewScoreCache(rdb),
		Mongo:     db,
		Redis:     rdb,
		Config:    cfg,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
