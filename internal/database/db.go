package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a PostgreSQL connection pool using pgx and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN must not be empty")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}

	// Sane defaults for a service-oriented workload.
	cfg.MaxConnLifetime = 1 * time.Hour
	cfg.MaxConnIdleTime = 15 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS call_lists (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT,
		company TEXT,
		notes TEXT,
		property_type TEXT,
		tags TEXT[] NOT NULL DEFAULT '{}',
		call_count INTEGER NOT NULL DEFAULT 0 CHECK (call_count >= 0),
		last_called TIMESTAMPTZ,
		disposition TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		call_list_id BIGINT REFERENCES call_lists(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS call_history (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		contact_id UUID NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		duration_seconds INTEGER NOT NULL DEFAULT 0 CHECK (duration_seconds >= 0),
		disposition TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		outcome TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status)`,
	`CREATE INDEX IF NOT EXISTS idx_call_history_contact ON call_history(contact_id)`,
}

// Migrate creates the schema on boot when it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
