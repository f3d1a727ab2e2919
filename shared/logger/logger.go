package logger

import (
	"io"
	"os"
	"time"

	"hotelbooking/config"
	"hotelbooking/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger installs the global logger before configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// Configure switches to JSON output outside development, tags every entry with
// the app name and applies the configured level.
func Configure(cfg *config.Config) {
	ConfigureOutput(cfg, os.Stdout)
}

func ConfigureOutput(cfg *config.Config, out io.Writer) {
	var writer io.Writer = out
	if cfg.Server.Env == constant.ServerEnvDevelopment {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(writer).With().Timestamp()
	if cfg.App.Name != constant.Empty {
		logCtx = logCtx.Str("app", cfg.App.Name)
	}

	log.Logger = logCtx.Logger()

	SetLogLevel(cfg)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies Server.LogLevel, falling back to info when it is unset or invalid.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == constant.Empty {
		level = defaultLevel
		log.Debug().Str("loglevel", level.String()).Msg("Environment has no valid log level set up, using default.")
	}

	zerolog.SetGlobalLevel(level)
	log.Info().Str("loglevel", level.String()).Msg("Log level configured.")
}
