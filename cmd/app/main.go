package main

import (
	"context"
	"os"
	"seatpos/config"
	"seatpos/di"
	"seatpos/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const bootstrapTimeout = 30 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseProductionOutput(cfg, os.Stdout)

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	http := di.InitializeService()

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	if err := http.Session.Bootstrap(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to restore the staff session, starting signed out")
	}

	cancel()

	http.Serve()
}
