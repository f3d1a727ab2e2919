package postgres

//nolint:revive
import (
	"context"
	"errors"
	"hotelbooking/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	defaultQueryTimeout       = 5 * time.Second
)

var (
	errReadPoolUnavailable  = errors.New("read pool unavailable after retries")
	errWritePoolUnavailable = errors.New("write pool unavailable after retries")
)

// Connection is the storage handle handed to every repository.
type Connection struct {
	Read         *sqlx.DB
	Write        *sqlx.DB
	QueryTimeout time.Duration
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres
	retry := retryPolicy{attempts: pg.MaxRetry, wait: time.Duration(pg.RetryWaitTime) * time.Second}

	conn := &Connection{
		Read:         connect("read", pg.Read.DSN(pg.Prefix), retry),
		Write:        connect("write", pg.Write.DSN(pg.Prefix), retry),
		QueryTimeout: time.Duration(pg.QueryTimeoutSeconds) * time.Second,
	}

	if err := conn.Ready(); err != nil {
		log.Fatal().Err(err).Msg("Database unreachable")
	}

	return conn
}

// Ready fails when either pool could not be opened.
func (c *Connection) Ready() error {
	if c.Read == nil {
		return errReadPoolUnavailable
	}

	if c.Write == nil {
		return errWritePoolUnavailable
	}

	return nil
}

// NewFromDB builds a Connection that reads and writes through the same pool.
func NewFromDB(db *sqlx.DB, timeout time.Duration) *Connection {
	return &Connection{
		Read:         db,
		Write:        db,
		QueryTimeout: timeout,
	}
}

// WithTimeout bounds a single storage call.
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

type retryPolicy struct {
	attempts int
	wait     time.Duration
}

// connect dials the database until it answers or the retry policy is spent.
// It returns nil when every attempt failed.
func connect(name, dsn string, retry retryPolicy) *sqlx.DB {
	attempts := max(retry.attempts, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)

			log.Info().Str("name", name).Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", attempt).
			Int("of", attempts).
			Msg("Failed connecting to database")

		if attempt < attempts {
			time.Sleep(retry.wait)
		}
	}

	return nil
}
