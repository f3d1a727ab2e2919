package config_test

import (
	"net/url"
	"testing"
	"time"

	"hotelbooking/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresEndpoint_DSN(t *testing.T) {
	endpoint := config.PostgresEndpoint{
		Host:     "db.internal",
		Port:     "5432",
		Username: "booker",
		Password: "p@ss/word",
		Name:     "hotels",
		SSLMode:  "disable",
	}

	t.Run("plain", func(t *testing.T) {
		dsn, err := url.Parse(endpoint.DSN(""))
		require.NoError(t, err)

		assert.Equal(t, "postgres", dsn.Scheme)
		assert.Equal(t, "db.internal:5432", dsn.Host)
		assert.Equal(t, "/hotels", dsn.Path)
		assert.Equal(t, "disable", dsn.Query().Get("sslmode"))

		password, _ := dsn.User.Password()
		assert.Equal(t, "p@ss/word", password)
	})

	t.Run("prefix and extra params", func(t *testing.T) {
		dsn, err := url.Parse(endpoint.DSN("staging_", "x-migrations-table", "schema_migrations"))
		require.NoError(t, err)

		assert.Equal(t, "/staging_hotels", dsn.Path)
		assert.Equal(t, "schema_migrations", dsn.Query().Get("x-migrations-table"))
	})

	t.Run("dangling param is ignored", func(t *testing.T) {
		dsn, err := url.Parse(endpoint.DSN("", "orphan"))
		require.NoError(t, err)

		assert.False(t, dsn.Query().Has("orphan"))
	})
}

func TestRateLimiter_WindowAt(t *testing.T) {
	limits := config.RateLimiter{WindowSeconds: 60}

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	index, remaining := limits.WindowAt(start.Add(15 * time.Second))
	assert.Equal(t, 45*time.Second, remaining)

	next, remaining := limits.WindowAt(start.Add(60 * time.Second))
	assert.Equal(t, index+1, next)
	assert.Equal(t, time.Minute, remaining)

	assert.Equal(t, time.Second, config.RateLimiter{}.Window())
}
