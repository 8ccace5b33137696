package db

import (
	"context"
	"fmt"
)

func (d *DB) ListMantras(ctx context.Context, userID string, activeOnly bool) ([]Mantra, error) {
	query := "SELECT id, user_id, text, is_active, sort_order, created_at FROM mantras WHERE user_id = ?"
	if activeOnly {
		query += " AND is_active = 1"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := d.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying mantras: %w", err)
	}
	defer rows.Close()

	var out []Mantra
	for rows.Next() {
		var m Mantra
		if err := rows.Scan(&m.ID, &m.UserID, &m.Text, &m.IsActive, &m.SortOrder, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning mantra: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (d *DB) CreateMantra(ctx context.Context, userID, text string) (string, error) {
	var next int
	if err := d.conn.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order) + 1, 0) FROM mantras WHERE user_id = ?", userID,
	).Scan(&next); err != nil {
		return "", fmt.Errorf("finding next mantra position: %w", err)
	}

	id := newID()
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO mantras (id, user_id, text, sort_order) VALUES (?, ?, ?, ?)",
		id, userID, text, next,
	)
	if err != nil {
		return "", fmt.Errorf("creating mantra: %w", err)
	}
	return id, nil
}

func (d *DB) UpdateMantra(ctx context.Context, userID, id string, fields map[string]any) error {
	return d.updateRow(ctx, "mantras", userID, id, fields)
}

func (d *DB) DeleteMantra(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "mantras", userID, id)
}

func (d *DB) ReorderMantras(ctx context.Context, userID string, ids []string) error {
	return d.reorderRows(ctx, "mantras", "sort_order", userID, ids)
}
