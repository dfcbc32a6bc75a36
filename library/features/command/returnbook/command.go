package returnbook

import (
	"time"

	"github.com/aiswo/librarydesk/library/shared/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to record the return of a book.
type Command struct {
	BookID     core.BookIDString
	ReturnDate core.DateTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, returnDate time.Time) Command {
	return Command{
		BookID:     bookID,
		ReturnDate: core.ToDate(returnDate),
	}
}
