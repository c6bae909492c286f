// Package postgres implements the store interfaces on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool used by the stores. pgxmock pools
// satisfy it in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// whereBuilder accumulates AND-ed predicates with positional arguments.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends a predicate. Each "?" in clause is replaced by the next
// positional parameter, all bound to the same value.
func (w *whereBuilder) add(clause string, value any) {
	w.args = append(w.args, value)
	placeholder := "$" + strconv.Itoa(len(w.args))
	w.clauses = append(w.clauses, strings.ReplaceAll(clause, "?", placeholder))
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// next returns the placeholder for an argument appended after the predicates.
func (w *whereBuilder) next(value any) string {
	w.args = append(w.args, value)
	return "$" + strconv.Itoa(len(w.args))
}

// likePattern escapes LIKE metacharacters and wraps s for a substring match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// searchClause builds a case-insensitive substring match over fields, OR-ed
// together, for use with whereBuilder.add. Every field must be in allowed so
// column names never come from anywhere but this package. An empty list
// searches defaults.
func searchClause(fields, defaults []string, allowed map[string]bool) (string, error) {
	if len(fields) == 0 {
		fields = defaults
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if !allowed[f] {
			return "", fmt.Errorf("unknown search field %q", f)
		}
		parts = append(parts, f+" ILIKE ?")
	}
	return "(" + strings.Join(parts, " OR ") + ")", nil
}
