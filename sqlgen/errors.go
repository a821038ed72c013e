package sqlgen

import "errors"

var (
	// ErrNoColumns is returned for an INSERT or UPDATE with no columns.
	ErrNoColumns = errors.New("sqlgen: statement requires at least one column")

	// ErrColumnMismatch is returned when column and value counts differ.
	ErrColumnMismatch = errors.New("sqlgen: column and value counts differ")

	// ErrEmptyWhere is returned for an UPDATE with no predicates.
	ErrEmptyWhere = errors.New("sqlgen: update requires at least one predicate")

	// ErrBadPredicate is returned for a predicate missing its column or operator.
	ErrBadPredicate = errors.New("sqlgen: predicate requires a column and an operator")

	// ErrBadDirection is returned for an ORDER BY direction other than ASC or DESC.
	ErrBadDirection = errors.New("sqlgen: order direction must be ASC or DESC")

	// ErrArgCount is returned by Interpolate when placeholders and arguments
	// do not line up.
	ErrArgCount = errors.New("sqlgen: placeholder and argument counts differ")
)
