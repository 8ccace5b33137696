package db

import (
	"context"
	"database/sql"
	"fmt"
)

// GetPreferences returns a user's scheduling preferences, falling back to
// the default planning window when none have been saved yet.
func (d *DB) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	var p Preferences
	err := d.conn.QueryRowContext(ctx,
		"SELECT user_id, wake_time, bed_time, auto_plan, updated_at FROM user_preferences WHERE user_id = ?",
		userID,
	).Scan(&p.UserID, &p.WakeTime, &p.BedTime, &p.AutoPlan, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return &Preferences{UserID: userID, WakeTime: DefaultWakeTime, BedTime: DefaultBedTime}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting preferences: %w", err)
	}
	return &p, nil
}

// SetPreferences upserts a user's scheduling preferences.
func (d *DB) SetPreferences(ctx context.Context, userID, wakeTime, bedTime string, autoPlan bool) error {
	_, err := d.conn.ExecContext(ctx,
		`INSERT INTO user_preferences (user_id, wake_time, bed_time, auto_plan) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   wake_time = excluded.wake_time,
		   bed_time = excluded.bed_time,
		   auto_plan = excluded.auto_plan,
		   updated_at = datetime('now')`,
		userID, wakeTime, bedTime, autoPlan,
	)
	if err != nil {
		return fmt.Errorf("setting preferences: %w", err)
	}
	return nil
}

// ListAutoPlanUsers returns the ids of users who opted in to the morning
// auto-plan run.
func (d *DB) ListAutoPlanUsers(ctx context.Context) ([]string, error) {
	rows, err := d.conn.QueryContext(ctx, "SELECT user_id FROM user_preferences WHERE auto_plan = 1")
	if err != nil {
		return nil, fmt.Errorf("querying auto-plan users: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning auto-plan user: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
