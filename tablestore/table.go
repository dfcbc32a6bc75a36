package tablestore

import (
	"context"
	"fmt"
	"slices"
)

// Row is one record of a Table, one cell per header column.
type Row []string

// Table is an in-memory copy of a whole persisted table.
type Table struct {
	Header []string
	Rows   []Row
}

// Backend persists whole tables. Load returns ErrTableNotFound for a table that was never saved.
type Backend interface {
	Load(ctx context.Context, name TableNameString) (Table, error)
	Save(ctx context.Context, name TableNameString, table Table) error
}

// BuildTable creates a Table with the given header and rows.
func BuildTable(header []string, rows ...Row) Table {
	return Table{
		Header: slices.Clone(header),
		Rows:   rows,
	}
}

// Len returns the number of data rows (the header is not counted).
func (t Table) Len() int {
	return len(t.Rows)
}

// Validate checks that the header is not empty and that every row has exactly one cell per column.
func (t Table) Validate() error {
	if len(t.Header) == 0 {
		return ErrEmptyHeader
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf(
				"%w: row %d has %d cells, expected %d",
				ErrMalformedTable, i+1, len(row), len(t.Header),
			)
		}
	}

	return nil
}

// ExpectHeader returns ErrHeaderMismatch if the table's header differs from expected.
func (t Table) ExpectHeader(expected []string) error {
	if !slices.Equal(t.Header, expected) {
		return fmt.Errorf("%w: got %q, want %q", ErrHeaderMismatch, t.Header, expected)
	}

	return nil
}

// WithAppendedRow returns a copy of the table with row appended.
func (t Table) WithAppendedRow(row Row) Table {
	clone := t.Clone()
	clone.Rows = append(clone.Rows, slices.Clone(row))

	return clone
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, slices.Clone(row))
	}

	return Table{
		Header: slices.Clone(t.Header),
		Rows:   rows,
	}
}
