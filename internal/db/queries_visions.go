package db

import (
	"context"
	"fmt"
)

func (d *DB) ListVisions(ctx context.Context, userID string, activeOnly bool) ([]Vision, error) {
	query := "SELECT id, user_id, text, is_active, sort_order, created_at FROM visions WHERE user_id = ?"
	if activeOnly {
		query += " AND is_active = 1"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := d.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying visions: %w", err)
	}
	defer rows.Close()

	var out []Vision
	for rows.Next() {
		var v Vision
		if err := rows.Scan(&v.ID, &v.UserID, &v.Text, &v.IsActive, &v.SortOrder, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning vision: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (d *DB) CreateVision(ctx context.Context, userID, text string) (string, error) {
	var next int
	if err := d.conn.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order) + 1, 0) FROM visions WHERE user_id = ?", userID,
	).Scan(&next); err != nil {
		return "", fmt.Errorf("finding next vision position: %w", err)
	}

	id := newID()
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO visions (id, user_id, text, sort_order) VALUES (?, ?, ?, ?)",
		id, userID, text, next,
	)
	if err != nil {
		return "", fmt.Errorf("creating vision: %w", err)
	}
	return id, nil
}

func (d *DB) UpdateVision(ctx context.Context, userID, id string, fields map[string]any) error {
	return d.updateRow(ctx, "visions", userID, id, fields)
}

func (d *DB) DeleteVision(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "visions", userID, id)
}

func (d *DB) ReorderVisions(ctx context.Context, userID string, ids []string) error {
	return d.reorderRows(ctx, "visions", "sort_order", userID, ids)
}
