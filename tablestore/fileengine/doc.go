// Package fileengine provides a local-filesystem implementation of tablestore.Backend.
//
// Each table is one comma-separated file named "<table><extension>" inside the configured
// directory, with the header as the first line. Save rewrites the whole file: the table is
// written to a uniquely named temporary file in the same directory which is then renamed
// over the target, so readers never observe a half-written table.
//
// There is no locking. Two processes saving the same table concurrently both succeed and
// the last rename wins.
//
// Usage:
//
//	backend, err := fileengine.NewBackend(
//		fileengine.WithDirectory("/var/lib/librarydesk"),
//		fileengine.WithLogger(slog.Default()),
//	)
package fileengine
