package sqlgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mpphp/database/dialect"
)

// Interpolate folds a query's bound arguments into literal SQL text using
// the dialect's escaping rules. It exists for drivers without parameter
// binding and for echoing final statement text; the bound form in Query is
// the one that should reach a database.
//
// Placeholders inside single-quoted string literals are left untouched.
func Interpolate(q *Query, d dialect.Dialect) (string, error) {
	var b strings.Builder
	b.Grow(len(q.SQL))

	s := q.SQL
	next := 0
	inString := false
	usedNumbered := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch c {
			case '\\':
				// Backslash escape (MySQL style): copy the escaped byte blindly.
				if i+1 < len(s) {
					i++
					b.WriteByte(s[i])
				}
			case '\'':
				if i+1 < len(s) && s[i+1] == '\'' {
					// Doubled quote stays inside the literal.
					i++
					b.WriteByte('\'')
				} else {
					inString = false
				}
			}
			continue
		}

		switch {
		case c == '\'':
			inString = true
			b.WriteByte(c)

		case c == '?':
			if next >= len(q.Args) {
				return "", ErrArgCount
			}
			lit, err := formatValue(q.Args[next], d)
			if err != nil {
				return "", err
			}
			b.WriteString(lit)
			next++

		case c == '$' && i+1 < len(s) && isDigit(s[i+1]):
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			n, err := strconv.Atoi(s[i+1 : j])
			if err != nil || n < 1 || n > len(q.Args) {
				return "", ErrArgCount
			}
			lit, err := formatValue(q.Args[n-1], d)
			if err != nil {
				return "", err
			}
			b.WriteString(lit)
			usedNumbered = true
			i = j - 1

		default:
			b.WriteByte(c)
		}
	}

	if !usedNumbered && next != len(q.Args) {
		return "", ErrArgCount
	}

	return b.String(), nil
}

// formatValue renders one bound value as inline SQL text. Numeric values are
// embedded bare; everything else is escaped and single-quote wrapped.
func formatValue(v any, d dialect.Dialect) (string, error) {
	switch v := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		return d.BoolLiteral(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case string:
		return "'" + d.EscapeString(v) + "'", nil
	case []byte:
		return "'" + d.EscapeString(string(v)) + "'", nil
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05") + "'", nil
	default:
		return "'" + d.EscapeString(fmt.Sprintf("%v", v)) + "'", nil
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
