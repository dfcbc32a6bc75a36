package library

import (
	"context"
	"time"

	"github.com/aiswo/librarydesk/library/features/command/issuebook"
	"github.com/aiswo/librarydesk/library/features/command/returnbook"
	"github.com/aiswo/librarydesk/library/features/query/outstandingbooks"
	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/library/shared/shell/observable"
	"github.com/aiswo/librarydesk/tablestore"
)

// LedgerStore persists book-issue records.
type LedgerStore struct {
	backend     tablestore.Backend
	tableName   tablestore.TableNameString
	issue       *observable.CommandWrapper[issuebook.Command]
	giveBack    *observable.CommandWrapper[returnbook.Command]
	outstanding *observable.QueryWrapper[outstandingbooks.Query, outstandingbooks.OutstandingBooks]
}

// NewLedgerStore creates a LedgerStore on config.Backend and config.LedgerTable.
func NewLedgerStore(config StoreConfig, opts ...Option) (*LedgerStore, error) {
	o, err := buildOptions(config, opts)
	if err != nil {
		return nil, err
	}

	tableName := config.ledgerTable()

	issue, err := wrapCommand[issuebook.Command](issuebook.NewCommandHandler(config.Backend, tableName), o)
	if err != nil {
		return nil, err
	}

	giveBack, err := wrapCommand[returnbook.Command](returnbook.NewCommandHandler(config.Backend, tableName), o)
	if err != nil {
		return nil, err
	}

	outstanding, err := wrapQuery[outstandingbooks.Query, outstandingbooks.OutstandingBooks](
		outstandingbooks.NewQueryHandler(config.Backend, tableName),
		o,
	)
	if err != nil {
		return nil, err
	}

	return &LedgerStore{
		backend:     config.Backend,
		tableName:   tableName,
		issue:       issue,
		giveBack:    giveBack,
		outstanding: outstanding,
	}, nil
}

// TableName returns the name of the ledger table.
func (s *LedgerStore) TableName() tablestore.TableNameString {
	return s.tableName
}

// Load reads all records. A missing table is created with its header.
func (s *LedgerStore) Load(ctx context.Context) (core.Ledger, error) {
	return shell.LoadLedger(ctx, s.backend, s.tableName)
}

// IssueBook appends an outstanding record unless any record already uses bookID.
func (s *LedgerStore) IssueBook(
	ctx context.Context,
	bookID core.BookIDString,
	title, issuedTo string,
	issueDate time.Time,
) (bool, error) {
	result, err := s.issue.Handle(ctx, issuebook.BuildCommand(bookID, title, issuedTo, issueDate))

	return result.Succeeded(), err
}

// ReturnBook sets the ReturnDate of the first record with bookID, if that record is still outstanding.
func (s *LedgerStore) ReturnBook(ctx context.Context, bookID core.BookIDString, returnDate time.Time) (bool, error) {
	result, err := s.giveBack.Handle(ctx, returnbook.BuildCommand(bookID, returnDate))

	return result.Succeeded(), err
}

// ListOutstanding returns the records that are issued and not returned, in stored order.
func (s *LedgerStore) ListOutstanding(ctx context.Context) ([]core.BookIssueRecord, error) {
	result, err := s.outstanding.Handle(ctx, outstandingbooks.BuildQuery())

	return result.Books, err
}
