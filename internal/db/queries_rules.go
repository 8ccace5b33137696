package db

import (
	"context"
	"database/sql"
	"fmt"
)

// ListRules returns every calendar rule for a user, lowest priority first.
func (d *DB) ListRules(ctx context.Context, userID string) ([]CalendarRule, error) {
	return d.scanRules(ctx,
		"SELECT id, user_id, rule_text, is_active, priority, created_at FROM calendar_rules WHERE user_id = ? ORDER BY priority ASC",
		userID,
	)
}

// ListActiveRules returns only active rules, lowest priority first.
func (d *DB) ListActiveRules(ctx context.Context, userID string) ([]CalendarRule, error) {
	return d.scanRules(ctx,
		"SELECT id, user_id, rule_text, is_active, priority, created_at FROM calendar_rules WHERE user_id = ? AND is_active = 1 ORDER BY priority ASC",
		userID,
	)
}

// CreateRule appends a rule after the user's current highest priority.
func (d *DB) CreateRule(ctx context.Context, userID, ruleText string) (*CalendarRule, error) {
	var next int
	err := d.conn.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(priority) + 1, 0) FROM calendar_rules WHERE user_id = ?", userID,
	).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("finding next rule priority: %w", err)
	}

	id := newID()
	if _, err := d.conn.ExecContext(ctx,
		"INSERT INTO calendar_rules (id, user_id, rule_text, priority) VALUES (?, ?, ?, ?)",
		id, userID, ruleText, next,
	); err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}
	return d.getRule(ctx, id)
}

func (d *DB) UpdateRule(ctx context.Context, userID, id string, fields map[string]any) error {
	return d.updateRow(ctx, "calendar_rules", userID, id, fields)
}

func (d *DB) DeleteRule(ctx context.Context, userID, id string) error {
	return d.deleteRow(ctx, "calendar_rules", userID, id)
}

// ReorderRules assigns priorities 0..n-1 following the given id order.
func (d *DB) ReorderRules(ctx context.Context, userID string, ids []string) error {
	return d.reorderRows(ctx, "calendar_rules", "priority", userID, ids)
}

func (d *DB) getRule(ctx context.Context, id string) (*CalendarRule, error) {
	var r CalendarRule
	err := d.conn.QueryRowContext(ctx,
		"SELECT id, user_id, rule_text, is_active, priority, created_at FROM calendar_rules WHERE id = ?", id,
	).Scan(&r.ID, &r.UserID, &r.RuleText, &r.IsActive, &r.Priority, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("rule %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting rule: %w", err)
	}
	return &r, nil
}

func (d *DB) scanRules(ctx context.Context, query string, args ...any) ([]CalendarRule, error) {
	rows, err := d.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rules: %w", err)
	}
	defer rows.Close()

	var out []CalendarRule
	for rows.Next() {
		var r CalendarRule
		if err := rows.Scan(&r.ID, &r.UserID, &r.RuleText, &r.IsActive, &r.Priority, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
