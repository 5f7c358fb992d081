package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/school-admin/pkg/kv"
)

const (
	kvTable       = "kv_entry"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"
)

type kvStore struct {
	db Database
}

// NewKVStore expects the kv_entry table from data/sql/kv migrations.
func NewKVStore(db Database) kv.Store {
	return kvStore{db: db}
}

func (s kvStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.db.StatementBuilder().
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select query: %w", err)
	}

	var value string
	err = s.db.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select %s: %w", key, err)
	}

	return value, nil
}

func (s kvStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.db.StatementBuilder().
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s", kvKeyColumn, kvValueColumn)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}

	return nil
}

func (s kvStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := s.db.StatementBuilder().
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}

	return nil
}
