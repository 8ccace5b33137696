package db

import (
	"context"
	"database/sql"
	"fmt"
)

// GetDailyNote retrieves a user's free-form note for a date, or "" if none.
func (d *DB) GetDailyNote(ctx context.Context, userID, date string) (string, error) {
	var note string
	err := d.conn.QueryRowContext(ctx,
		"SELECT note FROM daily_notes WHERE user_id = ? AND date = ?", userID, date,
	).Scan(&note)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting daily note: %w", err)
	}
	return note, nil
}

// SetDailyNote stores or replaces a user's note for a date.
func (d *DB) SetDailyNote(ctx context.Context, userID, date, note string) error {
	_, err := d.conn.ExecContext(ctx,
		`INSERT INTO daily_notes (id, user_id, date, note) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, date) DO UPDATE SET note = excluded.note, updated_at = datetime('now')`,
		newID(), userID, date, note,
	)
	if err != nil {
		return fmt.Errorf("setting daily note: %w", err)
	}
	return nil
}
