package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL UNIQUE,
    message TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema idempotently creates the users table. Called once at startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping schema init")
		return nil
	}

	if _, err := pool.Exec(ctx, usersSchema); err != nil {
		return fmt.Errorf("ensure users table: %w", err)
	}

	logger.Info("database schema initialized")
	return nil
}
