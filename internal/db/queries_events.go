package db

import (
	"context"
	"database/sql"
	"fmt"
)

const eventColumns = "id, user_id, title, COALESCE(description,''), date, start_time, end_time, is_ai_generated, completed, created_at"

// ListEvents returns a user's schedule for one date, earliest start first.
func (d *DB) ListEvents(ctx context.Context, userID, date string) ([]ScheduleEvent, error) {
	return d.scanEvents(ctx,
		"SELECT "+eventColumns+" FROM schedule_events WHERE user_id = ? AND date = ? ORDER BY start_time ASC",
		userID, date,
	)
}

func (d *DB) CreateEvent(ctx context.Context, userID, date string, in EventInput) (*ScheduleEvent, error) {
	id := newID()
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO schedule_events (id, user_id, title, description, date, start_time, end_time, is_ai_generated) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		id, userID, in.Title, nullStr(in.Description), date, in.StartTime, in.EndTime, in.IsAIGenerated,
	)
	if err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return d.GetEvent(ctx, id)
}

func (d *DB) GetEvent(ctx context.Context, id string) (*ScheduleEvent, error) {
	var e ScheduleEvent
	err := d.conn.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM schedule_events WHERE id = ?", id,
	).Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime, &e.IsAIGenerated, &e.Completed, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return &e, nil
}

func (d *DB) UpdateEvent(ctx context.Context, userID, id string, fields map[string]any) error {
	return d.updateRow(ctx, "schedule_events", userID, id, fields)
}

func (d *DB) DeleteEvent(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "schedule_events", userID, id)
}

func (d *DB) SetEventCompleted(ctx context.Context, userID, id string, completed bool) error {
	return d.updateRow(ctx, "schedule_events", userID, id, map[string]any{"completed": completed})
}

// DeleteAIEvents bulk-clears AI-generated events for a user's date and
// returns how many rows went away.
func (d *DB) DeleteAIEvents(ctx context.Context, userID, date string) (int64, error) {
	res, err := d.conn.ExecContext(ctx,
		"DELETE FROM schedule_events WHERE user_id = ? AND date = ? AND is_ai_generated = 1",
		userID, date,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting AI events: %w", err)
	}
	return res.RowsAffected()
}

// ReplaceAIEvents swaps the AI-generated portion of a day's schedule in one
// transaction: the previous AI events for the user/date are removed and the
// new batch inserted, so a failure can never leave a half-applied plan.
// User-entered events are untouched.
func (d *DB) ReplaceAIEvents(ctx context.Context, userID, date string, events []EventInput) ([]ScheduleEvent, error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting AI event replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM schedule_events WHERE user_id = ? AND date = ? AND is_ai_generated = 1",
		userID, date,
	); err != nil {
		return nil, fmt.Errorf("clearing previous AI events: %w", err)
	}

	ids := make([]string, len(events))
	for i, in := range events {
		ids[i] = newID()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schedule_events (id, user_id, title, description, date, start_time, end_time, is_ai_generated) VALUES (?, ?, ?, ?, ?, ?, ?, 1)",
			ids[i], userID, in.Title, nullStr(in.Description), date, in.StartTime, in.EndTime,
		); err != nil {
			return nil, fmt.Errorf("inserting AI event %q: %w", in.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing AI event replace: %w", err)
	}

	out := make([]ScheduleEvent, 0, len(ids))
	for _, id := range ids {
		e, err := d.GetEvent(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (d *DB) scanEvents(ctx context.Context, query string, args ...any) ([]ScheduleEvent, error) {
	rows, err := d.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var out []ScheduleEvent
	for rows.Next() {
		var e ScheduleEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime, &e.IsAIGenerated, &e.Completed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
