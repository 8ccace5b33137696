package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var allowedColumns = map[string]map[string]bool{
	"habits":          {"name": true, "description": true, "is_active": true, "sort_order": true},
	"todos":           {"text": true, "completed": true, "sort_order": true, "date": true},
	"goals":           {"title": true, "description": true, "metric_name": true, "metric_target": true, "metric_current": true, "deadline": true},
	"visions":         {"text": true, "is_active": true, "sort_order": true},
	"mantras":         {"text": true, "is_active": true, "sort_order": true},
	"calendar_rules":  {"rule_text": true, "is_active": true, "priority": true},
	"schedule_events": {"title": true, "description": true, "start_time": true, "end_time": true, "completed": true},
}

// updateRow is a generic helper for updating a row's fields. The user_id
// predicate keeps a caller's mutations off other users' rows; a mismatch
// reads as ErrNotFound.
func (d *DB) updateRow(ctx context.Context, table, userID, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	allowed, ok := allowedColumns[table]
	if !ok {
		return fmt.Errorf("unknown table: %s", table)
	}
	var setClauses []string
	var args []any
	for col, val := range fields {
		if !allowed[col] {
			return fmt.Errorf("disallowed column %q for table %s", col, table)
		}
		setClauses = append(setClauses, col+" = ?")
		args = append(args, val)
	}
	args = append(args, id, userID)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? AND user_id = ?", table, strings.Join(setClauses, ", "))
	res, err := d.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s %s: %w", table, id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}
	return nil
}

// deleteRow removes a user's row by id, reporting ErrNotFound when nothing
// matched (absent row or another user's row).
func (d *DB) deleteRow(ctx context.Context, table, userID, id string) error {
	res, err := d.conn.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = ? AND user_id = ?", table), id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}
	return nil
}

// reorderRows rewrites sort positions for the given ids, first to last, in
// a single transaction.
func (d *DB) reorderRows(ctx context.Context, table, orderCol, userID string, ids []string) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting reorder: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ? AND user_id = ?", table, orderCol)
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, query, i, id, userID); err != nil {
			return fmt.Errorf("reordering %s: %w", table, err)
		}
	}
	return tx.Commit()
}

func newID() string {
	return uuid.NewString()
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
