package db

import (
	"context"
	"database/sql"
	"fmt"
)

// ListHabits returns a user's habits in display order. When activeOnly is
// set, inactive habits are excluded.
func (d *DB) ListHabits(ctx context.Context, userID string, activeOnly bool) ([]Habit, error) {
	query := "SELECT id, user_id, name, COALESCE(description,''), is_active, sort_order, created_at FROM habits WHERE user_id = ?"
	if activeOnly {
		query += " AND is_active = 1"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := d.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying habits: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		var h Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.IsActive, &h.SortOrder, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning habit: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (d *DB) CreateHabit(ctx context.Context, userID, name, description string) (string, error) {
	var next int
	if err := d.conn.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order) + 1, 0) FROM habits WHERE user_id = ?", userID,
	).Scan(&next); err != nil {
		return "", fmt.Errorf("finding next habit position: %w", err)
	}

	id := newID()
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO habits (id, user_id, name, description, sort_order) VALUES (?, ?, ?, ?, ?)",
		id, userID, name, nullStr(description), next,
	)
	if err != nil {
		return "", fmt.Errorf("creating habit: %w", err)
	}
	return id, nil
}

func (d *DB) UpdateHabit(ctx context.Context, userID, id string, fields map[string]any) error {
	return d.updateRow(ctx, "habits", userID, id, fields)
}

func (d *DB) DeleteHabit(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "habits", userID, id)
}

// LogHabit records whether a habit was completed on a date. Logging the same
// habit and date again overwrites the earlier outcome. The habit must belong
// to the user.
func (d *DB) LogHabit(ctx context.Context, userID, habitID, date string, completed bool) error {
	var one int
	err := d.conn.QueryRowContext(ctx,
		"SELECT 1 FROM habits WHERE id = ? AND user_id = ?", habitID, userID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("habit %s: %w", habitID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking habit: %w", err)
	}

	_, err = d.conn.ExecContext(ctx,
		`INSERT INTO habit_logs (id, habit_id, user_id, date, completed) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(habit_id, date) DO UPDATE SET completed = excluded.completed`,
		newID(), habitID, userID, date, completed,
	)
	if err != nil {
		return fmt.Errorf("logging habit: %w", err)
	}
	return nil
}

// HabitCompletion returns habit_id -> completed for a user's date.
func (d *DB) HabitCompletion(ctx context.Context, userID, date string) (map[string]bool, error) {
	rows, err := d.conn.QueryContext(ctx,
		"SELECT habit_id, completed FROM habit_logs WHERE user_id = ? AND date = ?",
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("querying habit logs: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var habitID string
		var completed bool
		if err := rows.Scan(&habitID, &completed); err != nil {
			return nil, fmt.Errorf("scanning habit log: %w", err)
		}
		out[habitID] = completed
	}
	return out, rows.Err()
}
