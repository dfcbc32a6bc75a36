// Package library is the data-access layer of librarydesk.
//
// A LedgerStore keeps book-issue records and a RegistryStore keeps user registrations. Both work on
// whole tables through a tablestore.Backend: every mutation loads the table, decides, and rewrites the
// table completely.
//
// Every operation returns its business outcome and, separately, an error that is a report for the
// caller. A table that cannot be read is treated as empty and the read error is returned next to the
// outcome. Saving after such a degraded load overwrites the unreadable table.
//
// There is no locking. Two processes mutating the same table concurrently can lose updates.
package library
