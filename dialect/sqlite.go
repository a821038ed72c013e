package dialect

import (
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

func init() {
	Register(&SQLite{}, "sqlite", "sqlite3")
}

// SQLite implements Dialect for SQLite via mattn/go-sqlite3. The Database
// connection parameter is the file path, or ":memory:" for an in-memory
// database.
type SQLite struct{}

func (*SQLite) Name() string       { return "sqlite" }
func (*SQLite) DriverName() string { return "sqlite3" }

func (*SQLite) DSN(cfg ConnConfig) string {
	if cfg.Database == "" {
		return ":memory:"
	}
	return cfg.Database
}

func (*SQLite) Placeholder(int) string { return "?" }

func (*SQLite) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// EscapeString doubles single quotes; SQLite has no other string escapes.
func (*SQLite) EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// BoolLiteral renders booleans as integers; SQLite stores them that way.
func (*SQLite) BoolLiteral(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (*SQLite) SupportsWriteLimit() bool { return false }
