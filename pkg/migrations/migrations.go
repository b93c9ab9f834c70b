package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// Migrations holds the schema and the catalog seed, in registration order.
var Migrations = migrate.NewMigrations()

const (
	tableName      = "schema_migrations"
	locksTableName = "schema_migration_locks"
)

// NewMigrator returns a migrator over every registered migration. Its
// bookkeeping tables are named apart from the catalog tables.
func NewMigrator(db *bun.DB) *migrate.Migrator {
	return migrate.NewMigrator(db, Migrations,
		migrate.WithTableName(tableName),
		migrate.WithLocksTableName(locksTableName),
	)
}

// BringUpToDate creates the bookkeeping tables if needed and applies every
// pending migration. A group with a zero ID means nothing was pending.
func BringUpToDate(ctx context.Context, db *bun.DB) (*migrate.MigrationGroup, error) {
	migrator := NewMigrator(db)
	if err := migrator.Init(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := migrator.Lock(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	defer migrator.Unlock(ctx) //nolint:errcheck

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return group, nil
}

// Rollback reverts the most recently applied group.
func Rollback(ctx context.Context, db *bun.DB) (*migrate.MigrationGroup, error) {
	migrator := NewMigrator(db)
	if err := migrator.Lock(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	defer migrator.Unlock(ctx) //nolint:errcheck

	group, err := migrator.Rollback(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return group, nil
}
