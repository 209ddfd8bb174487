package kvstore

import (
	"context"
	"errors"
	"fmt"

	"counter_billing/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxAPI interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresKeyValueStore keeps the snapshots in a two-column table.
type PostgresKeyValueStore struct {
	db    pgxAPI
	table string
}

var _ interfaces.IKeyValueStore = (*PostgresKeyValueStore)(nil)

func NewPostgresKeyValueStore(db pgxAPI, table string) *PostgresKeyValueStore {
	if table == "" {
		table = DefaultTableName
	}
	return &PostgresKeyValueStore{db: db, table: pgx.Identifier{table}.Sanitize()}
}

// EnsureSchema creates the table when it does not exist yet.
func (s *PostgresKeyValueStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, s.table))
	return err
}

func (s *PostgresKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, s.table), key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresKeyValueStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, s.table), key, value)
	return err
}

func (s *PostgresKeyValueStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, s.table), key)
	return err
}
