package sessioncache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteRepository stores cache entries in a local SQLite database. Several
// client processes may share the same database file; SQLite's locking keeps
// individual writes atomic, and the rev column orders them.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache[%s]: %w", key, err)
	}
	if len(value) == 0 {
		// tombstone left by Clear
		return nil, nil
	}
	return value, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cache (key, value, rev)
		VALUES (?, ?, (SELECT IFNULL(MAX(rev), 0) + 1 FROM cache))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, rev = excluded.rev
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set cache[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, key string) error {
	return r.Put(ctx, key, nil)
}

func (r *SQLiteRepository) Revision(ctx context.Context) (int64, error) {
	var rev int64
	err := r.db.QueryRowContext(ctx, `SELECT IFNULL(MAX(rev), 0) FROM cache`).Scan(&rev)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache revision: %w", err)
	}
	return rev, nil
}
