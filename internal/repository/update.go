package repository

import (
	"context"
	"database/sql"

	"github.com/caninesocial/canine-convention/internal/query"
)

// updateSpec is the static configuration behind every update-one-field
// operation: which table, which id column, and which route-level field
// names map to which columns. The table and column names only ever come
// from these compile-time literals; the client controls nothing but the
// bound value and the target id.
type updateSpec struct {
	table    string
	idColumn string
	fields   map[string]string // route field -> column
	notFound error             // entity sentinel for a zero-row update
}

// updateField performs a single-column UPDATE against the registry's table.
// An unregistered field yields ErrUnknownField before any statement is
// built. Zero matched rows yield the entity's not-found sentinel; the
// connection runs with clientFoundRows, so setting a column to its
// current value still counts as a match.
func (s updateSpec) updateField(ctx context.Context, db *sql.DB, field string, id uint64, value any) error {
	col, ok := s.fields[field]
	if !ok {
		return ErrUnknownField
	}
	stmt, args, err := query.Bind(
		"UPDATE "+s.table+" SET "+col+" = :value WHERE "+s.idColumn+" = :id",
		map[string]any{"value": value, "id": id},
	)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return s.notFound
	}
	return nil
}
