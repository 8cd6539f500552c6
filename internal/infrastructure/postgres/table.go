package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of *pgxpool.Pool used by the repositories.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// table implements the lookups shared by every record kind.
// Field names passed to it are column constants, never request input.
type table[T any] struct {
	db      Querier
	name    string
	columns []string
	orderBy string
	scan    func(row pgx.Row) (T, error)
}

func (t table[T]) selectWhere(field string) string {
	q := "SELECT " + strings.Join(t.columns, ", ") + " FROM " + t.name + " WHERE " + field + " = $1"
	if t.orderBy != "" {
		q += " ORDER BY " + t.orderBy
	}
	return q
}

func (t table[T]) returning() string {
	return " RETURNING " + strings.Join(t.columns, ", ")
}

// findOne returns the first row where field = value, or nil when none matches.
func (t table[T]) findOne(ctx context.Context, field string, value string) (*T, error) {
	if hasNUL(value) {
		return nil, nil
	}
	rec, err := t.scan(t.db.QueryRow(ctx, t.selectWhere(field)+" LIMIT 1", value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// findMany returns every row where field = value. The result is never nil.
func (t table[T]) findMany(ctx context.Context, field string, value string) ([]T, error) {
	if hasNUL(value) {
		return make([]T, 0), nil
	}
	rows, err := t.db.Query(ctx, t.selectWhere(field), value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]T, 0)
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// deleteByID removes at most one row. Missing ids are not an error.
func (t table[T]) deleteByID(ctx context.Context, id string) error {
	if hasNUL(id) {
		return nil
	}
	_, err := t.db.Exec(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
	return err
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation (code 23505).
func isUniqueViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code == "23505"
	}
	return false
}

// PostgreSQL text cannot hold NUL, so no stored value can match a key containing one.
func hasNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

// stripNUL drops NUL bytes from text about to be stored.
func stripNUL(s string) string {
	if !hasNUL(s) {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "")
}

func stripNULs(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = stripNUL(s)
	}
	return out
}
