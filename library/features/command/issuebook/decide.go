package issuebook

import (
	"github.com/aiswo/librarydesk/library/shared/core"
)

// Decide implements the business logic to determine whether a book can be issued.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A ledger and a book with BookID
//	WHEN: IssueBook command is received
//	THEN: the ledger with an outstanding record for BookID appended
//	REJECTED: "book id already exists" if any record carries BookID, returned or not
func Decide(ledger core.Ledger, command Command) core.DecisionResult[core.Ledger] {
	if ledger.HasBookID(command.BookID) {
		return core.RejectedDecision[core.Ledger](core.ErrBookIDAlreadyExists)
	}

	record := core.BuildBookIssueRecord(command.BookID, command.Title, command.IssuedTo, command.IssueDate)

	return core.SuccessDecision(ledger.WithIssued(record))
}
