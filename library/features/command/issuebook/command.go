package issuebook

import (
	"time"

	"github.com/aiswo/librarydesk/library/shared/core"
)

const (
	commandType = "IssueBook"
)

// Command represents the intent to issue a book to someone.
type Command struct {
	BookID    core.BookIDString
	Title     string
	IssuedTo  string
	IssueDate core.DateTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, title, issuedTo string, issueDate time.Time) Command {
	return Command{
		BookID:    bookID,
		Title:     title,
		IssuedTo:  issuedTo,
		IssueDate: core.ToDate(issueDate),
	}
}
