// Package postgresengine provides a PostgreSQL implementation of tablestore.Backend.
//
// All logical tables share one PostgreSQL table (default "library_tables") with one row per
// logical table: its name, its header and its data rows, the latter two as JSONB arrays.
// Save is a single INSERT ... ON CONFLICT DO UPDATE statement, so a whole-table rewrite is
// atomic without an explicit transaction. There is no optimistic concurrency check: the last
// Save wins, exactly like the file engine.
//
// Supported connection types (pgx, sql.DB, sqlx) share the same SQL, built with goqu.
//
// Usage examples:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	backend, _ := postgresengine.NewBackendFromPGXPool(pool)
//	_ = backend.CreateTableIfNotExists(ctx)
//
//	db, _ := sql.Open("postgres", dsn) // lib/pq
//	backend, _ := postgresengine.NewBackendFromSQLDB(db, postgresengine.WithTableName("desk_tables"))
package postgresengine
