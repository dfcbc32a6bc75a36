package returnbook

import (
	"github.com/aiswo/librarydesk/library/shared/core"
)

// Decide implements the business logic to determine whether a book can be returned.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A ledger and a book with BookID
//	WHEN: ReturnBook command is received
//	THEN: the ledger with ReturnDate set on the first record carrying BookID
//	REJECTED: "return date is missing" if the command carries no date
//	REJECTED: "book was never issued" if no record carries BookID
//	REJECTED: "book was already returned" if the first such record already has a ReturnDate
func Decide(ledger core.Ledger, command Command) core.DecisionResult[core.Ledger] {
	if command.ReturnDate.IsZero() {
		return core.RejectedDecision[core.Ledger](core.ErrMissingReturnDate)
	}

	index := ledger.IndexOf(command.BookID)
	if index < 0 {
		return core.RejectedDecision[core.Ledger](core.ErrBookNeverIssued)
	}

	if ledger.Records[index].IsReturned() {
		return core.RejectedDecision[core.Ledger](core.ErrBookAlreadyReturned)
	}

	return core.SuccessDecision(ledger.WithReturned(index, command.ReturnDate))
}
