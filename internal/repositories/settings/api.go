package settingsrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Get returns the stored connection, or a zero Connection if nothing was saved yet.
func (r *Repo) Get(ctx context.Context) (Connection, error) {
	var c Connection

	err := r.db.QueryRowContext(ctx, `
		SELECT region, access_key_id, secret_access_key, session_token, queue_url
		FROM connection_settings
		WHERE id = 1`,
	).Scan(&c.Region, &c.AccessKeyID, &c.SecretAccessKey, &c.SessionToken, &c.QueueURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Connection{}, nil
		}
		return Connection{}, fmt.Errorf("select connection settings: %v", err)
	}

	return c, nil
}

// Save stores the connection, replacing the previous one.
func (r *Repo) Save(ctx context.Context, c Connection) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO connection_settings
			(id, region, access_key_id, secret_access_key, session_token, queue_url, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			region = excluded.region,
			access_key_id = excluded.access_key_id,
			secret_access_key = excluded.secret_access_key,
			session_token = excluded.session_token,
			queue_url = excluded.queue_url,
			updated_at = excluded.updated_at`,
		c.Region, c.AccessKeyID, c.SecretAccessKey, c.SessionToken, c.QueueURL, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("upsert connection settings: %v", err)
	}
	return nil
}

// SaveIfEmpty stores the connection only if nothing was saved before.
// It reports whether the connection was stored.
func (r *Repo) SaveIfEmpty(ctx context.Context, c Connection) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO connection_settings
			(id, region, access_key_id, secret_access_key, session_token, queue_url, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		c.Region, c.AccessKeyID, c.SecretAccessKey, c.SessionToken, c.QueueURL, time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("insert connection settings: %v", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get affected rows: %v", err)
	}
	return n == 1, nil
}
