package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mpphp/database/dialect"
)

// Default limits applied when the caller does not supply one. Writes are
// capped at a single row so an underspecified WHERE clause cannot wipe a
// table; reads default to one page.
const (
	DefaultSelectLimit = 15
	DefaultWriteLimit  = 1
)

// NoLimit disables the LIMIT clause on SELECT.
const NoLimit = -1

// Query is a parameterized SQL statement.
type Query struct {
	SQL  string
	Args []any
}

// OrderBy is a single ORDER BY term.
type OrderBy struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// Builder composes statement text for one dialect.
type Builder struct {
	d dialect.Dialect
}

// NewBuilder returns a Builder for the given dialect.
func NewBuilder(d dialect.Dialect) *Builder {
	return &Builder{d: d}
}

// Insert builds an INSERT statement. Column and placeholder lists are
// derived from one pass over the same slice, so their order always matches.
func (b *Builder) Insert(table string, columns []string, values []any) (*Query, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if len(columns) != len(values) {
		return nil, ErrColumnMismatch
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		quoted[i] = b.d.QuoteIdentifier(col)
		placeholders[i] = b.d.Placeholder(i + 1)
		args[i] = values[i]
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		b.d.QuoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "))

	return &Query{SQL: sql, Args: args}, nil
}

// Select builds a SELECT statement. A nil or empty column list selects *.
// A limit of zero applies DefaultSelectLimit; pass NoLimit to read unbounded.
func (b *Builder) Select(table string, columns []string, where Clauses, orderBy []OrderBy, limit, offset int) (*Query, error) {
	var parts []string
	var args []any
	argIndex := 1

	if len(columns) == 0 {
		parts = append(parts, "SELECT *")
	} else {
		quoted := make([]string, len(columns))
		for i, col := range columns {
			quoted[i] = b.d.QuoteIdentifier(col)
		}
		parts = append(parts, "SELECT "+strings.Join(quoted, ", "))
	}

	parts = append(parts, "FROM "+b.d.QuoteIdentifier(table))

	whereSQL, whereArgs, err := buildWhere(where, b.d, &argIndex)
	if err != nil {
		return nil, err
	}
	if whereSQL != "" {
		parts = append(parts, "WHERE "+whereSQL)
		args = append(args, whereArgs...)
	}

	if len(orderBy) > 0 {
		orderParts := make([]string, len(orderBy))
		for i, ob := range orderBy {
			dir, err := normalizeDirection(ob.Direction)
			if err != nil {
				return nil, err
			}
			orderParts[i] = b.d.QuoteIdentifier(ob.Column) + " " + dir
		}
		parts = append(parts, "ORDER BY "+strings.Join(orderParts, ", "))
	}

	if limit == 0 {
		limit = DefaultSelectLimit
	}
	if limit > 0 {
		parts = append(parts, "LIMIT "+strconv.Itoa(limit))
	}
	if offset > 0 {
		parts = append(parts, "OFFSET "+strconv.Itoa(offset))
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

// Update builds an UPDATE statement. It refuses an empty SET list and an
// empty WHERE clause; a limit of zero or less applies DefaultWriteLimit on
// dialects that accept LIMIT on writes.
func (b *Builder) Update(table string, columns []string, values []any, where Clauses, limit int) (*Query, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if len(columns) != len(values) {
		return nil, ErrColumnMismatch
	}
	if len(where) == 0 {
		return nil, ErrEmptyWhere
	}

	var args []any
	argIndex := 1

	setParts := make([]string, len(columns))
	for i, col := range columns {
		setParts[i] = fmt.Sprintf("%s = %s", b.d.QuoteIdentifier(col), b.d.Placeholder(argIndex))
		args = append(args, values[i])
		argIndex++
	}

	parts := []string{
		"UPDATE " + b.d.QuoteIdentifier(table),
		"SET " + strings.Join(setParts, ", "),
	}

	whereSQL, whereArgs, err := buildWhere(where, b.d, &argIndex)
	if err != nil {
		return nil, err
	}
	parts = append(parts, "WHERE "+whereSQL)
	args = append(args, whereArgs...)

	if b.d.SupportsWriteLimit() {
		parts = append(parts, "LIMIT "+strconv.Itoa(writeLimit(limit)))
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

// Delete builds a DELETE statement. The WHERE clause may be empty; the
// write limit still applies on dialects that accept it.
func (b *Builder) Delete(table string, where Clauses, limit int) (*Query, error) {
	parts := []string{"DELETE FROM " + b.d.QuoteIdentifier(table)}
	var args []any
	argIndex := 1

	whereSQL, whereArgs, err := buildWhere(where, b.d, &argIndex)
	if err != nil {
		return nil, err
	}
	if whereSQL != "" {
		parts = append(parts, "WHERE "+whereSQL)
		args = append(args, whereArgs...)
	}

	if b.d.SupportsWriteLimit() {
		parts = append(parts, "LIMIT "+strconv.Itoa(writeLimit(limit)))
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

func writeLimit(limit int) int {
	if limit <= 0 {
		return DefaultWriteLimit
	}
	return limit
}

func normalizeDirection(dir string) (string, error) {
	switch strings.ToUpper(dir) {
	case "", "ASC":
		return "ASC", nil
	case "DESC":
		return "DESC", nil
	}
	return "", ErrBadDirection
}
