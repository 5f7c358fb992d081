package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/klwxsrx/school-admin/pkg/log"
)

const (
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type (
	MigrationSource interface {
		fs.ReadDirFS
	}

	Migrator struct {
		db     Database
		logger log.Logger
	}
)

func FSMigrations(fsys fs.ReadDirFS) MigrationSource {
	return fsys
}

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	_, err := m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	var performedIDs []string
	err = m.db.SelectContext(ctx, &performedIDs, "SELECT id FROM migration")
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, source := range sources {
		err = m.executeSource(ctx, source, performedIDs)
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) executeSource(ctx context.Context, source MigrationSource, performedIDs []string) error {
	entries, err := source.ReadDir(".")
	if err != nil {
		return fmt.Errorf("read migration files: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || slices.Contains(performedIDs, entry.Name()) {
			continue
		}

		content, err := fs.ReadFile(source, entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		err = m.perform(ctx, entry.Name(), string(content))
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", entry.Name(), err)
		}

		m.logger.WithField("migrationID", entry.Name()).Info(ctx, "migration executed successfully")
	}

	return nil
}

func (m *Migrator) perform(ctx context.Context, id, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("empty migration")
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for _, query := range strings.Split(content, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = tx.ExecContext(ctx, query)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	query, args, err := m.db.StatementBuilder().
		Insert("migration").
		Columns("id").
		Values(id).
		ToSql()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("build migration record query: %w", err)
	}

	_, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("store migration record: %w", err)
	}

	return tx.Commit()
}
