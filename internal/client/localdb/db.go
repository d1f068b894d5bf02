// Package localdb bootstraps the client's local SQLite database and applies
// the embedded goose migrations. The local database holds client-only state
// (the reminder ledger); entity mirrors stay in memory and are rebuilt from
// the backend on every start.
package localdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mzaikin/boardroom/internal/client/migrations"
	"github.com/mzaikin/boardroom/internal/client/repositories/reminders"
)

// Repositories bundles the repositories backed by the local database.
type Repositories struct {
	Reminders reminders.Repository
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Init opens (creating if needed) the local database at dsn and returns the
// repositories bound to it. The caller owns closing the returned *sql.DB.
func Init(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, &Repositories{Reminders: reminders.NewSQLiteRepository(db)}, nil
}
