package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ArinDixit06/prod-app/internal/auth"
	"github.com/ArinDixit06/prod-app/internal/config"
	"github.com/ArinDixit06/prod-app/internal/httpapi"
	"github.com/ArinDixit06/prod-app/internal/store"
	"github.com/ArinDixit06/prod-app/internal/sync"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	ctx := context.Background()

	var stores store.Stores
	switch cfg.StoreDriver {
	case "memory":
		stores = store.NewMemoryStores()
		log.Warn().Msg("using in-memory store, data will not survive restarts")
	case "postgres":
		if err := store.Migrate(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
		pool, err := store.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect database")
		}
		defer pool.Close()
		stores = store.NewPostgresStores(pool)
	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown store driver")
	}

	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.TokenTTL))
	coord := sync.New(stores, log.With().Str("component", "sync").Logger())
	app := httpapi.New(stores, tokens, coord, log).App()

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server starting")
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
