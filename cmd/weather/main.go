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

	if err := cfg.Validate(config.ServiceWeather); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	utils.SetSecret(cfg.SessionSecret)
	utils.SetSessionCookieName(cfg.CookieName(config.ServiceWeather))

	dashboard, err := app.NewWeather(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize weather dashboard")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dashboard.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Weather dashboard stopped with error")
	}
	log.Info().Msg("Server exited properly")
}
