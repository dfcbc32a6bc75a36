package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/tablestore"
)

const (
	ledgerColBookID     = "BookID"
	ledgerColTitle      = "Title"
	ledgerColIssuedTo   = "IssuedTo"
	ledgerColIssueDate  = "IssueDate"
	ledgerColReturnDate = "ReturnDate"
)

// LedgerHeader returns the persisted column header of the ledger table.
func LedgerHeader() []string {
	return []string{ledgerColBookID, ledgerColTitle, ledgerColIssuedTo, ledgerColIssueDate, ledgerColReturnDate}
}

// LedgerFromTable converts a stored table into a Ledger.
// Only a wrong header or a ragged row fails the table. An empty or unreadable date cell reads as the zero
// date: a ReturnDate like that counts as not returned.
func LedgerFromTable(table tablestore.Table) (core.Ledger, error) {
	if err := table.ExpectHeader(LedgerHeader()); err != nil {
		return core.Ledger{}, err
	}

	if err := table.Validate(); err != nil {
		return core.Ledger{}, err
	}

	records := make([]core.BookIssueRecord, 0, table.Len())

	for _, row := range table.Rows {
		records = append(records, core.BookIssueRecord{
			BookID:     row[0],
			Title:      row[1],
			IssuedTo:   row[2],
			IssueDate:  parseDateCell(row[3]),
			ReturnDate: parseDateCell(row[4]),
		})
	}

	return core.BuildLedger(records...), nil
}

// LedgerToTable converts a Ledger into a table with the ledger header. An unset ReturnDate becomes an empty cell.
func LedgerToTable(ledger core.Ledger) tablestore.Table {
	rows := make([]tablestore.Row, 0, ledger.Len())

	for _, r := range ledger.Records {
		rows = append(rows, tablestore.Row{
			r.BookID,
			r.Title,
			r.IssuedTo,
			FormatDate(r.IssueDate),
			FormatDate(r.ReturnDate),
		})
	}

	return tablestore.BuildTable(LedgerHeader(), rows...)
}

// LoadLedger reads the ledger table.
// A missing table is created with its header and yields an empty ledger.
// Any other failure yields an empty ledger and an error wrapping ErrTableUnreadable.
func LoadLedger(ctx context.Context, backend tablestore.Backend, name tablestore.TableNameString) (core.Ledger, error) {
	table, err := backend.Load(ctx, name)
	if errors.Is(err, tablestore.ErrTableNotFound) {
		return core.Ledger{}, initializeTable(ctx, backend, name, LedgerHeader())
	}

	if err != nil {
		return core.Ledger{}, fmt.Errorf("%w: ledger %s: %w", ErrTableUnreadable, name, err)
	}

	ledger, err := LedgerFromTable(table)
	if err != nil {
		return core.Ledger{}, fmt.Errorf("%w: ledger %s: %w", ErrTableUnreadable, name, err)
	}

	return ledger, nil
}

// SaveLedger replaces the whole ledger table.
func SaveLedger(ctx context.Context, backend tablestore.Backend, name tablestore.TableNameString, ledger core.Ledger) error {
	if err := backend.Save(ctx, name, LedgerToTable(ledger)); err != nil {
		return fmt.Errorf("save ledger %s: %w", name, err)
	}

	return nil
}

func initializeTable(ctx context.Context, backend tablestore.Backend, name string, header []string) error {
	if err := backend.Save(ctx, name, tablestore.BuildTable(header)); err != nil {
		return fmt.Errorf("%w: initialize %s: %w", ErrTableUnreadable, name, err)
	}

	return nil
}
