package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/mpphp/database/dialect"
	"github.com/mpphp/database/internal/debug"
	"github.com/mpphp/database/sqlgen"
)

// Result reports the outcome of a write statement.
type Result struct {
	RowsAffected int64
	LastInsertID int64
}

// Executor submits finished statements to a driver and normalizes its
// responses. Zero rows affected is a legitimate outcome, not an error.
//
// The underlying *sql.DB serializes one logical operation per pooled
// connection, so an Executor is safe for concurrent use.
type Executor struct {
	db      *sql.DB
	dialect dialect.Dialect
	timeout time.Duration
}

// NewExecutor returns an Executor over an open handle.
func NewExecutor(db *sql.DB, d dialect.Dialect) *Executor {
	return &Executor{db: db, dialect: d}
}

// WithTimeout returns a copy of the executor that bounds every statement
// with the given timeout on top of the caller's context.
func (e *Executor) WithTimeout(timeout time.Duration) *Executor {
	cp := *e
	cp.timeout = timeout
	return &cp
}

func (e *Executor) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout > 0 {
		return context.WithTimeout(ctx, e.timeout)
	}
	return ctx, func() {}
}

// Exec runs a write statement and reports rows affected and, where the
// driver supports it, the last inserted id.
func (e *Executor) Exec(ctx context.Context, q *sqlgen.Query) (Result, error) {
	if e.db == nil {
		return Result{}, ErrClosed
	}
	ctx, cancel := e.bound(ctx)
	defer cancel()

	start := time.Now()
	res, err := e.db.ExecContext(ctx, q.SQL, q.Args...)
	debug.Query(q.SQL, len(q.Args), time.Since(start), err)
	if err != nil {
		return Result{}, wrapDriverError(e.dialect.Name(), err)
	}

	var out Result
	if n, err := res.RowsAffected(); err == nil {
		out.RowsAffected = n
	}
	// lib/pq has no insert id support; leave it zero there.
	if id, err := res.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	return out, nil
}

// Query runs a read statement and returns every row as a Record, in result
// order. The slice is always non-nil and may be empty; a single-row result
// is a slice of length one like any other.
func (e *Executor) Query(ctx context.Context, q *sqlgen.Query) ([]*Record, error) {
	if e.db == nil {
		return nil, ErrClosed
	}
	ctx, cancel := e.bound(ctx)
	defer cancel()

	start := time.Now()
	rows, err := e.db.QueryContext(ctx, q.SQL, q.Args...)
	debug.Query(q.SQL, len(q.Args), time.Since(start), err)
	if err != nil {
		return nil, wrapDriverError(e.dialect.Name(), err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, wrapDriverError(e.dialect.Name(), err)
	}

	records := make([]*Record, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, wrapDriverError(e.dialect.Name(), err)
		}

		rec := NewRecord()
		for i, col := range columns {
			rec.Set(col, normalizeValue(values[i]))
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDriverError(e.dialect.Name(), err)
	}

	return records, nil
}

// normalizeValue converts driver raw bytes to string so records hold plain
// scalars regardless of backend.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
