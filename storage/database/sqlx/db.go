package sqlxdb

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core/portal"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS portal_kv (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	getQuery    = `SELECT value FROM portal_kv WHERE key = $1`
	upsertQuery = `INSERT INTO portal_kv (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteQuery = `DELETE FROM portal_kv WHERE key = $1`
)

// DB stores every blob as one row of the portal_kv table.
type DB struct {
	db *sqlx.DB
}

var _ portal.Backend = (*DB)(nil) // interface compliance check

// New wraps an open connection and makes sure the table exists.
func New(ctx context.Context, db *sqlx.DB) (*DB, error) {
	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		return nil, errors.Wrap(err, "creating portal_kv")
	}
	return &DB{db: db}, nil
}

func (s *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	if err := s.db.GetContext(ctx, &value, getQuery, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, portal.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "selecting %s", key)
	}
	return value, nil
}

func (s *DB) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertQuery, key, value)
	return errors.Wrapf(err, "upserting %s", key)
}

func (s *DB) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, deleteQuery, key)
	return errors.Wrapf(err, "deleting %s", key)
}

func (s *DB) Close() error {
	return s.db.Close()
}
