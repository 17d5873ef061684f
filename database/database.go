package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"mealforecast/logger"
)

// DB is a global variable to hold the optional sales database pool.
var DB *pgxpool.Pool

// Connect sets up the database connection pool, retrying the first ping
// with exponential backoff.
func Connect(ctx context.Context, databaseURL string) error {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("creating pool: %w", err)
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.MaxElapsedTime = 30 * time.Second

	ping := func() error {
		if err := pool.Ping(ctx); err != nil {
			logger.Component("database").Warn().Err(err).Msg("Database ping failed, retrying")
			return err
		}
		return nil
	}
	if err := backoff.Retry(ping, backoff.WithContext(strategy, ctx)); err != nil {
		pool.Close()
		return fmt.Errorf("database ping failed after retries: %w", err)
	}

	DB = pool
	logger.Component("database").Info().Msg("Successfully connected to the database")
	return nil
}

// Close closes the database connection pool.
func Close() {
	if DB != nil {
		DB.Close()
		DB = nil
		logger.Component("database").Info().Msg("Database connection pool closed")
	}
}
