package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Manish26364/sevas-admin/internal/api"
	"github.com/Manish26364/sevas-admin/internal/infrastructure/config"
	mongodb "github.com/Manish26364/sevas-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/Manish26364/sevas-admin/internal/infrastructure/db/redis"
	"github.com/Manish26364/sevas-admin/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Seed + indexes ---
	if err := mongodb.Seed(ctx, db, cfg.Admin.Username, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("database seeding failed")
	}
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("booking index creation failed")
	}
	if err := mongodb.NewResidentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("resident index creation failed")
	}
	if err := mongodb.NewMachineRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("machine index creation failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
