// Package shell connects the pure core of the library desk to table storage.
//
// It converts between core types and tablestore tables, loads and saves the ledger and the registry
// through any tablestore.Backend, and provides the observability helpers shared by all command and
// query handlers.
//
// Loading never fails hard: a table that cannot be read or parsed yields an empty ledger or registry
// together with an error wrapping ErrTableUnreadable. A handler that goes on to save will overwrite
// the unreadable table with what it decided on the empty one.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
