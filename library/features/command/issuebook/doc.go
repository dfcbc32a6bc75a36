// Package issuebook implements the Issue Book use case.
//
// It follows the Load-Decide-Save pattern: the command handler loads the whole ledger table,
// the pure Decide function applies the business rule and the handler saves the whole table.
//
// A BookID can only be issued once. Any existing record with the same BookID rejects the issue,
// even when that book was returned long ago.
package issuebook
