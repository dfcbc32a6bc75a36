package core

import "errors"

var (
	// ErrBookIDAlreadyExists is the rejection reason when issuing a BookID that is already in the ledger.
	ErrBookIDAlreadyExists = errors.New("book id already exists")

	// ErrBookNeverIssued is the rejection reason when returning a BookID that is not in the ledger.
	ErrBookNeverIssued = errors.New("book was never issued")

	// ErrBookAlreadyReturned is the rejection reason when returning a book a second time.
	ErrBookAlreadyReturned = errors.New("book was already returned")

	// ErrMissingReturnDate is the rejection reason when a return carries no date.
	ErrMissingReturnDate = errors.New("return date is missing")
)
