package sqlgen

import (
	"fmt"
	"strings"

	"github.com/mpphp/database/dialect"
)

// buildWhere translates a clause list into condition text with bound
// arguments. The returned fragment carries no WHERE keyword; an empty clause
// list yields an empty fragment so callers can omit the keyword entirely.
//
// argIndex is the 1-based index of the next placeholder and is advanced for
// every bound value, so SET and WHERE arguments share one numbering.
func buildWhere(where Clauses, d dialect.Dialect, argIndex *int) (string, []any, error) {
	if len(where) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(where))
	args := make([]any, 0, len(where))

	for _, p := range where {
		if p.Column == "" || p.Operator == "" {
			return "", nil, ErrBadPredicate
		}
		if p.raw {
			// Verbatim two-part form, e.g. deleted_at IS NOT NULL.
			parts = append(parts, fmt.Sprintf("%s %s", d.QuoteIdentifier(p.Column), p.Operator))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", d.QuoteIdentifier(p.Column), p.Operator, d.Placeholder(*argIndex)))
		args = append(args, p.Value)
		*argIndex++
	}

	return strings.Join(parts, " AND "), args, nil
}
