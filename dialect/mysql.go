package dialect

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

func init() {
	Register(&MySQL{}, "mysql")
}

// MySQL implements Dialect for MySQL and MariaDB via go-sql-driver/mysql.
type MySQL struct{}

func (*MySQL) Name() string       { return "mysql" }
func (*MySQL) DriverName() string { return "mysql" }

func (*MySQL) DSN(cfg ConnConfig) string {
	var b strings.Builder
	if cfg.Username != "" {
		b.WriteString(cfg.Username)
		if cfg.Password != "" {
			b.WriteString(":")
			b.WriteString(cfg.Password)
		}
		b.WriteString("@")
	}
	if cfg.Socket != "" {
		fmt.Fprintf(&b, "unix(%s)", cfg.Socket)
	} else {
		host := cfg.Host
		if host == "" {
			host = "localhost"
		}
		port := cfg.Port
		if port == 0 {
			port = 3306
		}
		fmt.Fprintf(&b, "tcp(%s:%d)", host, port)
	}
	fmt.Fprintf(&b, "/%s?parseTime=true", cfg.Database)
	return b.String()
}

func (*MySQL) Placeholder(int) string { return "?" }

func (*MySQL) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// EscapeString backslash-escapes the characters the MySQL protocol treats
// specially inside string literals. Mirrors the driver's own interpolation
// rules (NO_BACKSLASH_ESCAPES mode is not supported on this path).
func (*MySQL) EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\x1a':
			b.WriteString(`\Z`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (*MySQL) BoolLiteral(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (*MySQL) SupportsWriteLimit() bool { return true }
