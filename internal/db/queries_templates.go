package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// templateEvent is the persisted shape of one event inside template_data.
type templateEvent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (d *DB) ListTemplates(ctx context.Context, userID string) ([]ScheduleTemplate, error) {
	rows, err := d.conn.QueryContext(ctx,
		"SELECT id, user_id, name, COALESCE(description,''), template_data, created_at, updated_at FROM schedule_templates WHERE user_id = ? ORDER BY name ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var out []ScheduleTemplate
	for rows.Next() {
		var t ScheduleTemplate
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.TemplateData, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SaveTemplate snapshots a day's schedule under a name so it can later be
// stamped onto other dates.
func (d *DB) SaveTemplate(ctx context.Context, userID, name, description, date string) (string, error) {
	events, err := d.ListEvents(ctx, userID, date)
	if err != nil {
		return "", err
	}
	snapshot := make([]templateEvent, len(events))
	for i, e := range events {
		snapshot[i] = templateEvent{Title: e.Title, Description: e.Description, StartTime: e.StartTime, EndTime: e.EndTime}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encoding template data: %w", err)
	}

	id := newID()
	_, err = d.conn.ExecContext(ctx,
		"INSERT INTO schedule_templates (id, user_id, name, description, template_data) VALUES (?, ?, ?, ?, ?)",
		id, userID, name, nullStr(description), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("saving template: %w", err)
	}
	return id, nil
}

func (d *DB) DeleteTemplate(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "schedule_templates", userID, id)
}

// ApplyTemplate expands a saved template into user events on the target
// date. All inserts happen in one transaction.
func (d *DB) ApplyTemplate(ctx context.Context, userID, templateID, date string) ([]ScheduleEvent, error) {
	var data string
	err := d.conn.QueryRowContext(ctx,
		"SELECT template_data FROM schedule_templates WHERE id = ? AND user_id = ?", templateID, userID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("template %s: %w", templateID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	var snapshot []templateEvent
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("decoding template data: %w", err)
	}

	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting template apply: %w", err)
	}
	defer tx.Rollback()

	ids := make([]string, len(snapshot))
	for i, e := range snapshot {
		ids[i] = newID()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schedule_events (id, user_id, title, description, date, start_time, end_time) VALUES (?, ?, ?, ?, ?, ?, ?)",
			ids[i], userID, e.Title, nullStr(e.Description), date, e.StartTime, e.EndTime,
		); err != nil {
			return nil, fmt.Errorf("inserting template event %q: %w", e.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing template apply: %w", err)
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
