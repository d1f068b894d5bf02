package reminders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mzaikin/boardroom/internal/dbx"
)

// SQLiteRepository implements Repository over the client's local database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) MarkNotified(ctx context.Context, meetingID, day string) error {
	query := `INSERT INTO reminder_log (meeting_id, day)
			values (?, ?)
			ON CONFLICT(meeting_id, day) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, meetingID, day)
	if err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) NotifiedOn(ctx context.Context, day string) ([]string, error) {
	return notifiedOn(ctx, r.db, day)
}

// Restore sweeps ledger rows older than day and returns the ids already
// notified on that day. Both statements run in one transaction so a failed
// read never leaves a half-purged ledger behind.
func (r *SQLiteRepository) Restore(ctx context.Context, day string) ([]string, error) {
	var ids []string
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reminder_log WHERE day < ?`, day); err != nil {
			return fmt.Errorf("failed to purge reminders: %w", err)
		}
		var err error
		ids, err = notifiedOn(ctx, tx, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func notifiedOn(ctx context.Context, db dbx.DBTX, day string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT meeting_id FROM reminder_log WHERE day = ?`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan reminder row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reminder rows: %w", err)
	}
	return ids, nil
}
