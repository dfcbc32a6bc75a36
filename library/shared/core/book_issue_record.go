package core

// BookIssueRecord is one row of the ledger: a book handed out to someone, and possibly returned.
type BookIssueRecord struct {
	BookID     BookIDString
	Title      string
	IssuedTo   string
	IssueDate  DateTS
	ReturnDate DateTS // zero while the book is out
}

// BuildBookIssueRecord creates an outstanding record.
func BuildBookIssueRecord(bookID BookIDString, title, issuedTo string, issueDate DateTS) BookIssueRecord {
	return BookIssueRecord{
		BookID:    bookID,
		Title:     title,
		IssuedTo:  issuedTo,
		IssueDate: ToDate(issueDate),
	}
}

// IsReturned reports whether ReturnDate is set.
func (r BookIssueRecord) IsReturned() bool {
	return !r.ReturnDate.IsZero()
}

// IsOutstanding reports whether the book is issued to someone and not yet returned.
func (r BookIssueRecord) IsOutstanding() bool {
	return r.IssuedTo != "" && !r.IsReturned()
}
