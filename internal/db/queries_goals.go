package db

import (
	"context"
	"fmt"
)

func (d *DB) ListGoals(ctx context.Context, userID string) ([]Goal, error) {
	rows, err := d.conn.QueryContext(ctx,
		"SELECT id, user_id, title, COALESCE(description,''), metric_name, metric_target, metric_current, COALESCE(deadline,''), created_at FROM goals WHERE user_id = ? ORDER BY created_at ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.MetricName, &g.MetricTarget, &g.MetricCurrent, &g.Deadline, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (d *DB) CreateGoal(ctx context.Context, userID string, g Goal) (string, error) {
	id := newID()
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO goals (id, user_id, title, description, metric_name, metric_target, metric_current, deadline) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		id, userID, g.Title, nullStr(g.Description), g.MetricName, g.MetricTarget, g.MetricCurrent, nullStr(g.Deadline),
	)
	if err != nil {
		return "", fmt.Errorf("creating goal: %w", err)
	}
	return id, nil
}

func (d *DB) UpdateGoal(ctx context.Context, userID, id string, fields map[string]any) error {
	return d.updateRow(ctx, "goals", userID, id, fields)
}

func (d *DB) DeleteGoal(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "goals", userID, id)
}
