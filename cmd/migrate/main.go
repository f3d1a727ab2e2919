package main

import (
	"os"

	"hotelbooking/config"
	"hotelbooking/helper"
	"hotelbooking/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	var err error

	switch os.Args[1] {
	case helper.ActionUp:
		err = helper.Up(cfg)
	case helper.ActionDown:
		err = helper.Down(cfg)
	case helper.ActionDrop:
		err = helper.Drop(cfg)
	case helper.ActionStepUp:
		err = helper.StepUp(cfg)
	case helper.ActionVersion:
		err = helper.Version(cfg)
	default:
		log.Fatal().Str("action", os.Args[1]).Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'version'")
	}

	if err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
