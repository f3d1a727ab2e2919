package redis

import (
	"context"
	"hotelbooking/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New connects to the primary Redis. Redis only backs rate limiting and booking
// idempotency keys, both of which degrade open, so an unreachable server is
// logged rather than fatal.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().
			Err(err).
			Str("host", primary.Host).
			Str("port", primary.Port).
			Msg("Failed to connect to Redis, rate limiting and idempotency keys are degraded")

		return client
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
