package kvstore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type fakePgx struct {
	execSQL  []string
	execArgs [][]any
	row      fakeRow
	querySQL string
	err      error
}

func (f *fakePgx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.NewCommandTag("OK"), f.err
}

func (f *fakePgx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.querySQL = sql
	return f.row
}

func TestPostgresKeyValueStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		db := &fakePgx{row: fakeRow{err: pgx.ErrNoRows}}
		s := NewPostgresKeyValueStore(db, "")
		_, found, err := s.Get(ctx, "foodItems")
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
		if !strings.Contains(db.querySQL, `"counter_kv"`) {
			t.Fatalf("expected sanitized default table, got %s", db.querySQL)
		}
	})

	t.Run("found", func(t *testing.T) {
		db := &fakePgx{row: fakeRow{value: "[]"}}
		s := NewPostgresKeyValueStore(db, "kv")
		v, found, err := s.Get(ctx, "foodItems")
		if err != nil || !found || v != "[]" {
			t.Fatalf("unexpected get: %q found=%v err=%v", v, found, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		db := &fakePgx{row: fakeRow{err: errors.New("db")}}
		s := NewPostgresKeyValueStore(db, "kv")
		if _, _, err := s.Get(ctx, "foodItems"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPostgresKeyValueStore_Writes(t *testing.T) {
	ctx := context.Background()
	db := &fakePgx{}
	s := NewPostgresKeyValueStore(db, "kv")

	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("unexpected schema error: %v", err)
	}
	if err := s.Set(ctx, "billHistory", "{}"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if err := s.Remove(ctx, "billHistory"); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}

	if len(db.execSQL) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(db.execSQL))
	}
	if !strings.HasPrefix(db.execSQL[0], `CREATE TABLE IF NOT EXISTS "kv"`) {
		t.Fatalf("unexpected schema sql: %s", db.execSQL[0])
	}
	if !strings.Contains(db.execSQL[1], "ON CONFLICT (key) DO UPDATE") {
		t.Fatalf("expected upsert, got %s", db.execSQL[1])
	}
	if db.execArgs[1][0] != "billHistory" || db.execArgs[1][1] != "{}" {
		t.Fatalf("unexpected set args: %v", db.execArgs[1])
	}
	if !strings.HasPrefix(db.execSQL[2], `DELETE FROM "kv"`) {
		t.Fatalf("unexpected delete sql: %s", db.execSQL[2])
	}
}
