package outstandingbooks

import (
	"github.com/aiswo/librarydesk/library/shared/core"
)

// Project selects the outstanding records of the ledger.
//
// Query Logic:
//
//	INCLUDES: records with a non-empty IssuedTo and no ReturnDate
//	ORDER: as stored
func Project(ledger core.Ledger, _ Query) OutstandingBooks {
	return OutstandingBooks{Books: ledger.Outstanding()}
}
