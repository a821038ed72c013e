// Package dialect abstracts the differences between supported SQL backends.
package dialect

import (
	"sort"
	"sync"
)

// ConnConfig holds the connection parameters for a single backend.
type ConnConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
	Socket   string
}

// Dialect describes one SQL backend: how to reach it and how to render
// identifiers, placeholders and literals for it.
type Dialect interface {
	// Name is the configuration key for this dialect ("mysql", "postgres", "sqlite").
	Name() string

	// DriverName is the database/sql driver name to open connections with.
	DriverName() string

	// DSN builds a driver connection string from the connection parameters.
	DSN(cfg ConnConfig) string

	// Placeholder returns the parameter marker for the n-th bound argument (1-based).
	Placeholder(n int) string

	// QuoteIdentifier quotes a table or column name.
	QuoteIdentifier(name string) string

	// EscapeString escapes a raw string for inline inclusion inside a
	// single-quoted SQL literal. The result is not quote-wrapped.
	EscapeString(s string) string

	// BoolLiteral renders a boolean as inline SQL text.
	BoolLiteral(b bool) string

	// SupportsWriteLimit reports whether UPDATE and DELETE statements
	// accept a LIMIT clause.
	SupportsWriteLimit() bool
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Dialect)
)

// Register makes a dialect available under the given names. It is intended
// to be called from dialect implementations' init functions.
func Register(d Dialect, names ...string) {
	mu.Lock()
	defer mu.Unlock()
	if len(names) == 0 {
		names = []string{d.Name()}
	}
	for _, name := range names {
		registry[name] = d
	}
}

// Get returns the dialect registered under name.
func Get(name string) (Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// Names returns the sorted list of registered dialect names.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
