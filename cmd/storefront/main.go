package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"shopfront/config"
	"shopfront/internal/app"
	"shopfront/pkg/logger"
	"shopfront/pkg/utils"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	if err := cfg.Validate(config.ServiceStorefront); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	utils.SetSecret(cfg.SessionSecret)
	utils.SetSessionCookieName(cfg.CookieName(config.ServiceStorefront))

	storefront, err := app.NewStorefront(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storefront")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := storefront.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Storefront stopped with error")
	}
	log.Info().Msg("Server exited properly")
}
