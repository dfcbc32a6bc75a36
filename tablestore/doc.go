// Package tablestore provides the core abstractions for whole-table persistence
// of small delimited tables.
//
// A Table is a header plus an ordered list of string rows. A Backend loads and
// saves complete named tables: there are no partial updates, no transactions and
// no locking. Every mutation is a read-modify-write of the whole table.
//
// Concurrent writers against the same table can race and lose updates (the last
// Save wins). Callers that need multi-writer safety must serialize access
// themselves.
//
// Available engines:
//   - fileengine: one CSV file per table in a directory
//   - postgresengine: one row per table in a PostgreSQL table (pgx, sql.DB, sqlx)
//   - s3engine: one CSV object per table in an S3 bucket
//
// Common usage pattern:
//
//	backend, _ := fileengine.NewBackend(fileengine.WithDirectory("./data"))
//
//	table, err := backend.Load(ctx, "library_data")
//	if errors.Is(err, tablestore.ErrTableNotFound) {
//		table = tablestore.BuildTable(header)
//	}
//
//	table = table.WithAppendedRow(tablestore.Row{"B-1", "Dune", "Ada", "2024-03-01", ""})
//	err = backend.Save(ctx, "library_data", table)
package tablestore
