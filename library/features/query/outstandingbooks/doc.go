// Package outstandingbooks implements the Outstanding Books query use case.
//
// It returns the ledger records that are issued to someone and not yet returned, in stored order.
// This is a read-only operation, except that a missing ledger table is created with its header.
package outstandingbooks
