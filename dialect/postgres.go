package dialect

import (
	"fmt"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver
)

func init() {
	Register(&Postgres{}, "postgres", "postgresql")
}

// Postgres implements Dialect for PostgreSQL via lib/pq.
type Postgres struct{}

func (*Postgres) Name() string       { return "postgres" }
func (*Postgres) DriverName() string { return "postgres" }

func (*Postgres) DSN(cfg ConnConfig) string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+escapeDSNValue(value))
		}
	}
	// lib/pq treats a host that is a directory path as a unix socket dir.
	if cfg.Socket != "" {
		add("host", cfg.Socket)
	} else {
		add("host", cfg.Host)
	}
	if cfg.Port > 0 {
		parts = append(parts, fmt.Sprintf("port=%d", cfg.Port))
	}
	add("user", cfg.Username)
	add("password", cfg.Password)
	add("dbname", cfg.Database)
	parts = append(parts, "sslmode=disable")
	return strings.Join(parts, " ")
}

// escapeDSNValue quotes a key=value DSN value when it contains spaces or quotes.
func escapeDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func (*Postgres) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (*Postgres) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// EscapeString doubles single quotes, the only escape PostgreSQL applies
// inside standard-conforming string literals.
func (*Postgres) EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func (*Postgres) BoolLiteral(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (*Postgres) SupportsWriteLimit() bool { return false }
