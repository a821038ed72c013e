// Package database is a minimal CRUD layer over MySQL, PostgreSQL and
// SQLite. Structured inputs — ordered records, AND-joined predicate lists,
// ordering and limit directives — are translated into parameterized SQL for
// the active dialect and executed through database/sql.
//
// A typical round trip:
//
//	cfg, err := config.Load("")
//	mgr := database.NewManager(cfg)
//	db, err := mgr.Default()
//
//	rec := database.RecordOf("name", "Ada", "age", 30)
//	res, err := db.Insert(ctx, "users", rec)
//
//	rows, err := db.Select(ctx, "users",
//		sqlgen.Clauses{}.And("age", ">", 21),
//		database.OrderBy("name", "ASC"))
//
// Statements bind their values as query arguments. The sqlgen.Interpolate
// fallback renders literal text with dialect escaping for the rare driver
// without parameter binding.
//
// Writes default to LIMIT 1 on dialects that allow limited writes, and
// SELECT defaults to one page of 15 rows; both are deliberate guards
// against unbounded statements.
package database
