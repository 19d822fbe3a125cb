package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const inMemoryDSN = "file::memory:"

//go:generate options-gen -out-filename=client_sqlite_options.gen.go -from-struct=SQLiteOptions
type SQLiteOptions struct {
	// path is a database file. Empty path keeps the database in memory.
	path  string `option:"mandatory"`
	debug bool
}

func NewSQLiteClient(opts SQLiteOptions) (*sql.DB, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	dsn := inMemoryDSN
	if opts.path != "" {
		dsn = (&url.URL{
			Scheme:   "file",
			Opaque:   opts.path,
			RawQuery: "_busy_timeout=5000&_journal_mode=WAL",
		}).String()
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %v", err)
	}
	// A single connection keeps the in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if opts.debug {
		zap.L().Named("store").Debug("sqlite opened", zap.String("dsn", dsn))
	}

	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS connection_settings (
		id                INTEGER PRIMARY KEY CHECK (id = 1),
		region            TEXT NOT NULL,
		access_key_id     TEXT NOT NULL,
		secret_access_key TEXT NOT NULL,
		session_token     TEXT NOT NULL,
		queue_url         TEXT NOT NULL,
		updated_at        TIMESTAMP NOT NULL
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("apply migration #%d: %v", i, err)
		}
	}
	return nil
}
