package sqlgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpphp/database/dialect"
)

func TestInterpolateInsert(t *testing.T) {
	d, _ := dialect.Get("mysql")
	b := NewBuilder(d)

	q, err := b.Insert("users", []string{"name", "age"}, []any{"Ada", 30})
	require.NoError(t, err)

	text, err := Interpolate(q, d)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO `users` (`name`, `age`) VALUES ('Ada', 30)", text)
}

func TestInterpolateWhereText(t *testing.T) {
	d, _ := dialect.Get("mysql")
	b := NewBuilder(d)

	where := Clauses{}.And("id", "=", 45).And("age", "=", 50)
	q, err := b.Delete("users", where, 0)
	require.NoError(t, err)

	text, err := Interpolate(q, d)
	require.NoError(t, err)
	// Single space before LIMIT; the clause values are embedded bare.
	assert.Equal(t, "DELETE FROM `users` WHERE `id` = 45 AND `age` = 50 LIMIT 1", text)
}

func TestInterpolateNumericsUnquoted(t *testing.T) {
	d, _ := dialect.Get("mysql")

	for _, v := range []any{30, int64(30), uint16(30), 3.5, float32(2)} {
		text, err := Interpolate(&Query{SQL: "SELECT ?", Args: []any{v}}, d)
		require.NoError(t, err)
		assert.NotContains(t, text, "'", "value %v", v)
	}
}

func TestInterpolateStringsAlwaysQuoted(t *testing.T) {
	d, _ := dialect.Get("mysql")

	// A numeric-looking string is still a string.
	text, err := Interpolate(&Query{SQL: "SELECT ?", Args: []any{"30"}}, d)
	require.NoError(t, err)
	assert.Equal(t, "SELECT '30'", text)
}

func TestInterpolateEscapesQuotes(t *testing.T) {
	mysql, _ := dialect.Get("mysql")
	sqlite, _ := dialect.Get("sqlite")

	q := &Query{SQL: "SELECT ?", Args: []any{"O'Brien"}}

	text, err := Interpolate(q, mysql)
	require.NoError(t, err)
	assert.Equal(t, `SELECT 'O\'Brien'`, text)

	text, err = Interpolate(q, sqlite)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'O''Brien'", text)
}

// A value full of quote characters must never terminate the literal early:
// outside doubled or backslash-escaped quotes, the rendered text contains
// exactly the opening and closing quote.
func TestInterpolateNeverUnterminated(t *testing.T) {
	sqlite, _ := dialect.Get("sqlite")

	text, err := Interpolate(&Query{SQL: "SELECT ?", Args: []any{"a'b''c"}}, sqlite)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'a''b''''c'", text)

	stripped := strings.ReplaceAll(text[len("SELECT "):], "''", "")
	assert.Equal(t, 2, strings.Count(stripped, "'"))
}

func TestInterpolateNullAndBool(t *testing.T) {
	mysql, _ := dialect.Get("mysql")
	sqlite, _ := dialect.Get("sqlite")

	text, err := Interpolate(&Query{SQL: "SELECT ?, ?", Args: []any{nil, true}}, mysql)
	require.NoError(t, err)
	assert.Equal(t, "SELECT NULL, TRUE", text)

	text, err = Interpolate(&Query{SQL: "SELECT ?", Args: []any{false}}, sqlite)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 0", text)
}

func TestInterpolateNumberedPlaceholders(t *testing.T) {
	pg, _ := dialect.Get("postgres")

	q := &Query{SQL: `SELECT * FROM "t" WHERE "a" = $1 AND "b" = $2`, Args: []any{"x", 2}}
	text, err := Interpolate(q, pg)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE "a" = 'x' AND "b" = 2`, text)
}

func TestInterpolateSkipsPlaceholdersInsideLiterals(t *testing.T) {
	mysql, _ := dialect.Get("mysql")

	q := &Query{SQL: "SELECT * FROM t WHERE a = 'lit?eral' AND b = ?", Args: []any{1}}
	text, err := Interpolate(q, mysql)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE a = 'lit?eral' AND b = 1", text)
}

func TestInterpolateArgCountMismatch(t *testing.T) {
	mysql, _ := dialect.Get("mysql")

	_, err := Interpolate(&Query{SQL: "SELECT ?", Args: nil}, mysql)
	assert.ErrorIs(t, err, ErrArgCount)

	_, err = Interpolate(&Query{SQL: "SELECT 1", Args: []any{1}}, mysql)
	assert.ErrorIs(t, err, ErrArgCount)

	pg, _ := dialect.Get("postgres")
	_, err = Interpolate(&Query{SQL: "SELECT $3", Args: []any{1}}, pg)
	assert.ErrorIs(t, err, ErrArgCount)
}
