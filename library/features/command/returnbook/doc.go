// Package returnbook implements the Return Book use case.
//
// The first ledger record carrying the BookID gets its ReturnDate set, provided it is still unset.
// A book is returned at most once; later records with the same BookID are never looked at.
package returnbook
