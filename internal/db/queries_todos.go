package db

import (
	"context"
	"fmt"
)

// ListTodos returns a user's todos for one date in display order.
func (d *DB) ListTodos(ctx context.Context, userID, date string) ([]Todo, error) {
	rows, err := d.conn.QueryContext(ctx,
		"SELECT id, user_id, text, date, completed, sort_order, created_at FROM todos WHERE user_id = ? AND date = ? ORDER BY sort_order ASC, created_at ASC",
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	var out []Todo
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Date, &t.Completed, &t.SortOrder, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (d *DB) CreateTodo(ctx context.Context, userID, text, date string) (string, error) {
	var next int
	if err := d.conn.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order) + 1, 0) FROM todos WHERE user_id = ? AND date = ?", userID, date,
	).Scan(&next); err != nil {
		return "", fmt.Errorf("finding next todo position: %w", err)
	}

	id := newID()
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO todos (id, user_id, text, date, sort_order) VALUES (?, ?, ?, ?, ?)",
		id, userID, text, date, next,
	)
	if err != nil {
		return "", fmt.Errorf("creating todo: %w", err)
	}
	return id, nil
}

func (d *DB) UpdateTodo(ctx context.Context, userID, id string, fields map[string]any) error {
	return d.updateRow(ctx, "todos", userID, id, fields)
}

func (d *DB) DeleteTodo(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "todos", userID, id)
}

func (d *DB) ReorderTodos(ctx context.Context, userID string, ids []string) error {
	return d.reorderRows(ctx, "todos", "sort_order", userID, ids)
}
