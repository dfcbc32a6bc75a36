package outstandingbooks

import (
	"github.com/aiswo/librarydesk/library/shared/core"
)

// OutstandingBooks represents the query result containing all outstanding records.
type OutstandingBooks struct {
	Books []core.BookIssueRecord
}

// Count returns the number of outstanding records.
func (r OutstandingBooks) Count() int {
	return len(r.Books)
}
