package config

import (
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
		Booking     struct {
			IdempotencyTTLSeconds     int `envconfig:"IDEMPOTENCY_TTL_SECONDS" default:"86400"`
			IdempotencyPendingSeconds int `envconfig:"IDEMPOTENCY_PENDING_SECONDS" default:"60"`
		} `envconfig:"BOOKING"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry            int              `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime       int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable      string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate         bool             `envconfig:"AUTO_MIGRATE"`
			Prefix              string           `envconfig:"PREFIX"`
			QueryTimeoutSeconds int              `envconfig:"QUERY_TIMEOUT_SECONDS" default:"5"`
			Read                PostgresEndpoint `envconfig:"READ"`
			Write               PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Enable   bool   `envconfig:"ENABLE"`
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// RateLimiter bounds requests per client in fixed windows.
type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"100"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
}

// Window returns the window length, at least one second.
func (r RateLimiter) Window() time.Duration {
	return time.Duration(max(r.WindowSeconds, 1)) * time.Second
}

// WindowAt returns the index of the window containing t and the time left in it.
func (r RateLimiter) WindowAt(t time.Time) (index int64, remaining time.Duration) {
	window := r.Window()
	index = t.UnixNano() / int64(window)
	remaining = time.Duration((index+1)*int64(window) - t.UnixNano())

	return index, remaining
}

// PostgresEndpoint is one side of the read/write database split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// DSN renders the endpoint as a lib/pq URL. The prefix is prepended to the
// database name so several environments can share one server.
func (e PostgresEndpoint) DSN(prefix string, params ...string) string {
	query := url.Values{}
	query.Set("sslmode", e.SSLMode)

	for i := 0; i+1 < len(params); i += 2 {
		query.Set(params[i], params[i+1])
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + prefix + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
