package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv_entries (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`

type kvRow struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SQLKVRepository stores entries in a kv_entries table on Postgres or SQLite.
type SQLKVRepository struct {
	db *sqlx.DB
}

// NewSQLKVRepository constructs the repository.
func NewSQLKVRepository(db *sqlx.DB) *SQLKVRepository {
	return &SQLKVRepository{db: db}
}

// EnsureSchema creates the kv_entries table when missing.
func (r *SQLKVRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, kvSchema); err != nil {
		return fmt.Errorf("ensure kv schema: %w", err)
	}
	return nil
}

func (r *SQLKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := r.db.Rebind(`SELECT value FROM kv_entries WHERE key = ?`)
	var value string
	if err := r.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get kv entry %s: %w", key, err)
	}
	return []byte(value), nil
}

func (r *SQLKVRepository) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO kv_entries (key, value, updated_at)
VALUES (:key, :value, :updated_at)
ON CONFLICT (key)
DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	row := kvRow{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("upsert kv entry %s: %w", key, err)
	}
	return nil
}

func (r *SQLKVRepository) Delete(ctx context.Context, key string) error {
	query := r.db.Rebind(`DELETE FROM kv_entries WHERE key = ?`)
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete kv entry %s: %w", key, err)
	}
	return nil
}

func (r *SQLKVRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, `SELECT key FROM kv_entries ORDER BY key ASC`); err != nil {
		return nil, fmt.Errorf("list kv keys: %w", err)
	}
	return keys, nil
}
