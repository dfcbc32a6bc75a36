package core

import "slices"

// Ledger holds all book issue records in stored order.
type Ledger struct {
	Records []BookIssueRecord
}

// BuildLedger creates a Ledger from records.
func BuildLedger(records ...BookIssueRecord) Ledger {
	return Ledger{Records: records}
}

// Len returns the number of records.
func (l Ledger) Len() int {
	return len(l.Records)
}

// HasBookID reports whether any record, returned or not, carries bookID.
func (l Ledger) HasBookID(bookID BookIDString) bool {
	return l.IndexOf(bookID) >= 0
}

// IndexOf returns the position of the first record carrying bookID, or -1.
func (l Ledger) IndexOf(bookID BookIDString) int {
	return slices.IndexFunc(l.Records, func(r BookIssueRecord) bool {
		return r.BookID == bookID
	})
}

// Outstanding returns the records that are issued and not returned, in stored order.
func (l Ledger) Outstanding() []BookIssueRecord {
	outstanding := make([]BookIssueRecord, 0, len(l.Records))

	for _, r := range l.Records {
		if r.IsOutstanding() {
			outstanding = append(outstanding, r)
		}
	}

	return outstanding
}

// WithIssued returns a copy of the ledger with record appended.
func (l Ledger) WithIssued(record BookIssueRecord) Ledger {
	records := make([]BookIssueRecord, 0, len(l.Records)+1)
	records = append(records, l.Records...)

	return Ledger{Records: append(records, record)}
}

// WithReturned returns a copy of the ledger where the record at index carries returnDate.
func (l Ledger) WithReturned(index int, returnDate DateTS) Ledger {
	records := slices.Clone(l.Records)
	records[index].ReturnDate = ToDate(returnDate)

	return Ledger{Records: records}
}
