package database

import (
	"context"
	"database/sql"

	"github.com/mpphp/database/dialect"
	"github.com/mpphp/database/sqlgen"
)

// DB bundles one open backend handle with the statement builder and
// executor for its dialect. It is safe for concurrent use.
type DB struct {
	sqldb   *sql.DB
	dialect dialect.Dialect
	builder *sqlgen.Builder
	exec    *Executor
}

// Open establishes a connection for the named dialect from connection
// parameters. The handle is pooled and lazy; use Ping to verify
// reachability.
func Open(dialectName string, cfg dialect.ConnConfig) (*DB, error) {
	d, ok := dialect.Get(dialectName)
	if !ok {
		return nil, &ConfigError{Backend: dialectName}
	}
	return OpenDSN(dialectName, d.DSN(cfg))
}

// OpenDSN establishes a connection for the named dialect from a raw driver
// DSN.
func OpenDSN(dialectName, dsn string) (*DB, error) {
	d, ok := dialect.Get(dialectName)
	if !ok {
		return nil, &ConfigError{Backend: dialectName}
	}
	sqldb, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, wrapDriverError(d.Name(), err)
	}
	return wrap(d, sqldb), nil
}

// Wrap adopts an already-open handle, for callers that manage sql.Open
// themselves.
func Wrap(dialectName string, sqldb *sql.DB) (*DB, error) {
	d, ok := dialect.Get(dialectName)
	if !ok {
		return nil, &ConfigError{Backend: dialectName}
	}
	return wrap(d, sqldb), nil
}

func wrap(d dialect.Dialect, sqldb *sql.DB) *DB {
	return &DB{
		sqldb:   sqldb,
		dialect: d,
		builder: sqlgen.NewBuilder(d),
		exec:    NewExecutor(sqldb, d),
	}
}

// Ping verifies the backend is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.sqldb.PingContext(ctx); err != nil {
		return wrapDriverError(db.dialect.Name(), err)
	}
	return nil
}

// Close releases the handle.
func (db *DB) Close() error { return db.sqldb.Close() }

// Dialect returns the active dialect.
func (db *DB) Dialect() dialect.Dialect { return db.dialect }

// Builder returns the statement builder for the active dialect.
func (db *DB) Builder() *sqlgen.Builder { return db.builder }

// Executor returns the statement executor for this handle.
func (db *DB) Executor() *Executor { return db.exec }

// SQLDB exposes the underlying handle for operations outside this layer.
func (db *DB) SQLDB() *sql.DB { return db.sqldb }

// Option adjusts a single statement.
type Option func(*options)

type options struct {
	columns []string
	orderBy []sqlgen.OrderBy
	limit   int
	offset  int
}

// Columns restricts a SELECT to the given columns instead of *.
func Columns(cols ...string) Option {
	return func(o *options) { o.columns = cols }
}

// OrderBy appends an ORDER BY term to a SELECT.
func OrderBy(column, direction string) Option {
	return func(o *options) {
		o.orderBy = append(o.orderBy, sqlgen.OrderBy{Column: column, Direction: direction})
	}
}

// Limit overrides the statement's default limit.
func Limit(n int) Option {
	return func(o *options) { o.limit = n }
}

// Offset skips the first n rows of a SELECT.
func Offset(n int) Option {
	return func(o *options) { o.offset = n }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Insert writes one record. Column and value order follow the record's
// insertion order.
func (db *DB) Insert(ctx context.Context, table string, rec *Record) (Result, error) {
	if rec == nil || rec.Len() == 0 {
		return Result{}, ErrEmptyRecord
	}
	q, err := db.builder.Insert(table, rec.Columns(), rec.Values())
	if err != nil {
		return Result{}, err
	}
	return db.exec.Exec(ctx, q)
}

// Update applies a record's fields to the rows matching where. The clause
// list must be non-empty; the write limit defaults to one row on dialects
// that support limited writes.
func (db *DB) Update(ctx context.Context, table string, rec *Record, where sqlgen.Clauses, opts ...Option) (Result, error) {
	if rec == nil || rec.Len() == 0 {
		return Result{}, ErrEmptyRecord
	}
	o := applyOptions(opts)
	q, err := db.builder.Update(table, rec.Columns(), rec.Values(), where, o.limit)
	if err != nil {
		return Result{}, err
	}
	return db.exec.Exec(ctx, q)
}

// Delete removes the rows matching where, at most one by default on
// dialects that support limited writes.
func (db *DB) Delete(ctx context.Context, table string, where sqlgen.Clauses, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	q, err := db.builder.Delete(table, where, o.limit)
	if err != nil {
		return Result{}, err
	}
	return db.exec.Exec(ctx, q)
}

// Select reads the rows matching where. The result is always a slice,
// possibly empty; the default limit is sqlgen.DefaultSelectLimit.
func (db *DB) Select(ctx context.Context, table string, where sqlgen.Clauses, opts ...Option) ([]*Record, error) {
	o := applyOptions(opts)
	q, err := db.builder.Select(table, o.columns, where, o.orderBy, o.limit, o.offset)
	if err != nil {
		return nil, err
	}
	return db.exec.Query(ctx, q)
}

// Get reads the first row matching where, or ErrNoRows.
func (db *DB) Get(ctx context.Context, table string, where sqlgen.Clauses, opts ...Option) (*Record, error) {
	records, err := db.Select(ctx, table, where, append(opts, Limit(1))...)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records[0], nil
}
