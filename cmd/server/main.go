package main

import (
	"context"

	"github.com/soulconnect/matching/internal/app"
	"github.com/soulconnect/matching/internal/cache"
	"github.com/soulconnect/matching/internal/config"
	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/logger"
	"github.com/soulconnect/matching/internal/server"
	"github.com/soulconnect/matching/internal/service/matching"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log, cfg)

	registrars := []server.Registrar{
		matching.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}
