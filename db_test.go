package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpphp/database/config"
	"github.com/mpphp/database/dialect"
	"github.com/mpphp/database/sqlgen"
)

// openTestDB opens an in-memory SQLite database with a users table. The pool
// is pinned to one connection so every statement sees the same memory
// database.
func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open("sqlite", dialect.ConnConfig{Database: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SQLDB().SetMaxOpenConns(1)

	_, err = db.Executor().Exec(context.Background(), &sqlgen.Query{
		SQL: `CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER
		)`,
	})
	require.NoError(t, err)
	return db
}

func TestOpenUnknownDialect(t *testing.T) {
	_, err := Open("oracle", dialect.ConnConfig{})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "oracle", cfgErr.Backend)
}

func TestInsertAndGet(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	res, err := db.Insert(ctx, "users", RecordOf("name", "Ada", "age", 30))
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.RowsAffected)
	assert.EqualValues(t, 1, res.LastInsertID)

	rec, err := db.Get(ctx, "users", sqlgen.Clauses{}.And("id", "=", res.LastInsertID))
	require.NoError(t, err)

	name, _ := rec.Get("name")
	age, _ := rec.Get("age")
	assert.Equal(t, "Ada", name)
	assert.EqualValues(t, 30, age)
}

func TestInsertEmptyRecord(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Insert(context.Background(), "users", NewRecord())
	assert.ErrorIs(t, err, ErrEmptyRecord)

	_, err = db.Insert(context.Background(), "users", nil)
	assert.ErrorIs(t, err, ErrEmptyRecord)
}

func TestSelectAlwaysReturnsSlice(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// Zero rows: empty slice, not nil and not an error.
	records, err := db.Select(ctx, "users", nil)
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Len(t, records, 0)

	_, err = db.Insert(ctx, "users", RecordOf("name", "Ada", "age", 30))
	require.NoError(t, err)

	// One row: still a slice.
	records, err = db.Select(ctx, "users", nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSelectOrderAndLimit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for _, u := range []struct {
		name string
		age  int
	}{{"Ada", 30}, {"Grace", 45}, {"Edsger", 70}} {
		_, err := db.Insert(ctx, "users", RecordOf("name", u.name, "age", u.age))
		require.NoError(t, err)
	}

	records, err := db.Select(ctx, "users", nil,
		Columns("name"),
		OrderBy("age", "DESC"),
		Limit(2))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first, _ := records[0].Get("name")
	second, _ := records[1].Get("name")
	assert.Equal(t, "Edsger", first)
	assert.Equal(t, "Grace", second)
}

func TestGetNoRows(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Get(context.Background(), "users", sqlgen.Clauses{}.And("id", "=", 999))
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestUpdateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	res, err := db.Insert(ctx, "users", RecordOf("name", "Ada", "age", 30))
	require.NoError(t, err)

	where := sqlgen.Clauses{}.And("id", "=", res.LastInsertID)
	upd, err := db.Update(ctx, "users", RecordOf("age", 31), where)
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.RowsAffected)

	rec, err := db.Get(ctx, "users", where)
	require.NoError(t, err)
	age, _ := rec.Get("age")
	assert.EqualValues(t, 31, age)
}

func TestUpdateRequiresWhere(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Update(context.Background(), "users", RecordOf("age", 31), nil)
	assert.ErrorIs(t, err, sqlgen.ErrEmptyWhere)
}

func TestDeleteRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	res, err := db.Insert(ctx, "users", RecordOf("name", "Ada", "age", 30))
	require.NoError(t, err)

	del, err := db.Delete(ctx, "users", sqlgen.Clauses{}.And("id", "=", res.LastInsertID))
	require.NoError(t, err)
	assert.EqualValues(t, 1, del.RowsAffected)

	// Deleting an absent row is zero rows affected, not an error.
	del, err = db.Delete(ctx, "users", sqlgen.Clauses{}.And("id", "=", res.LastInsertID))
	require.NoError(t, err)
	assert.EqualValues(t, 0, del.RowsAffected)
}

func TestFilteredInsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	input := RecordOf("name", "Ada", "age", 30, "is_admin", true)
	_, err := db.Insert(ctx, "users", input.Filter("name", "age"))
	require.NoError(t, err)

	rec, err := db.Get(ctx, "users", sqlgen.Clauses{}.And("name", "=", "Ada"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "age"}, rec.Columns())
}

func TestDriverErrorIsRecoverable(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Executor().Exec(context.Background(), &sqlgen.Query{SQL: "NOT REAL SQL"})
	require.Error(t, err)

	var drvErr *DriverError
	require.ErrorAs(t, err, &drvErr)
	assert.Equal(t, "sqlite", drvErr.Dialect)
	assert.NotEmpty(t, drvErr.Message)
}

func TestEscapedValueRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	name := `O'Brien; DROP TABLE users; --`
	_, err := db.Insert(ctx, "users", RecordOf("name", name, "age", 1))
	require.NoError(t, err)

	rec, err := db.Get(ctx, "users", sqlgen.Clauses{}.And("name", "=", name))
	require.NoError(t, err)
	got, _ := rec.Get("name")
	assert.Equal(t, name, got)

	// The table survived.
	records, err := db.Select(ctx, "users", nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCanceledContext(t *testing.T) {
	db := openTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.Select(ctx, "users", nil)
	require.Error(t, err)
}

func TestManagerLifecycle(t *testing.T) {
	cfg := &config.Config{
		Default: "main",
		Connections: map[string]config.Connection{
			"main": {
				Driver:     "sqlite",
				ConnConfig: dialect.ConnConfig{Database: ":memory:"},
			},
		},
	}
	mgr := NewManager(cfg)
	t.Cleanup(func() { mgr.Close() })

	db, err := mgr.Default()
	require.NoError(t, err)

	again, err := mgr.DB("main")
	require.NoError(t, err)
	assert.Same(t, db, again)

	_, err = mgr.DB("reporting")
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "reporting", cfgErr.Backend)

	require.NoError(t, mgr.Close())
}

func TestManagerNoDefault(t *testing.T) {
	mgr := NewManager(&config.Config{})

	_, err := mgr.Default()
	assert.True(t, errors.As(err, new(*ConfigError)))
}
