// Package database provides the application's database extension: a lazy
// connection pool and the schema bootstrap behind the initdb command.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/nbportal/portal/internal/config"
)

// Open returns a pool for the configured driver and DSN with the pool
// limits applied. No connection is established until first use; call Ping
// to verify connectivity eagerly.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	if cfg.Driver == "" {
		return nil, fmt.Errorf("database driver not configured")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn not configured")
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Ping verifies connectivity with a bounded timeout.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// schema holds the DDL applied by InitSchema. The notebooks table stores
// publication metadata alongside the exported files.
var schema = []string{
	`DROP TABLE IF EXISTS notebooks`,
	`CREATE TABLE notebooks (
		id           SERIAL PRIMARY KEY,
		name         TEXT NOT NULL UNIQUE,
		title        TEXT NOT NULL DEFAULT '',
		published_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// InitSchema drops and recreates the application schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
