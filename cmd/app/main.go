package main

import (
	"hotelbooking/config"
	"hotelbooking/di"
	"hotelbooking/helper"
	"hotelbooking/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel Booking API
// @version 1.0
// @description Hotel catalog browsing and room booking.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
