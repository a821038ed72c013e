package database

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNoRows is returned by Get when the statement matched nothing.
	ErrNoRows = errors.New("database: no rows in result set")

	// ErrEmptyRecord is returned for an INSERT or UPDATE with an empty record.
	ErrEmptyRecord = errors.New("database: record has no fields")

	// ErrClosed is returned for operations on a closed handle.
	ErrClosed = errors.New("database: connection is closed")
)

// ConfigError reports a backend name with no usable configuration.
type ConfigError struct {
	Backend string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("database: no connection configured for backend %q", e.Backend)
}

// DriverError wraps a backend rejection (syntax error, constraint violation,
// connectivity failure) with the driver's message and code. Library calls
// always return it to the caller; nothing in this package terminates the
// process.
type DriverError struct {
	Dialect string
	Code    string
	Message string
	Err     error
}

func (e *DriverError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("database: %s error %s: %s", e.Dialect, e.Code, e.Message)
	}
	return fmt.Sprintf("database: %s error: %s", e.Dialect, e.Message)
}

func (e *DriverError) Unwrap() error { return e.Err }

// wrapDriverError normalizes a raw driver error into *DriverError, pulling
// out the numeric or state code each driver exposes.
func wrapDriverError(dialectName string, err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return &DriverError{
			Dialect: dialectName,
			Code:    fmt.Sprintf("%d", myErr.Number),
			Message: myErr.Message,
			Err:     err,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &DriverError{
			Dialect: dialectName,
			Code:    string(pqErr.Code),
			Message: pqErr.Message,
			Err:     err,
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return &DriverError{
			Dialect: dialectName,
			Code:    fmt.Sprintf("%d", int(liteErr.Code)),
			Message: liteErr.Error(),
			Err:     err,
		}
	}

	return &DriverError{
		Dialect: dialectName,
		Message: err.Error(),
		Err:     err,
	}
}
