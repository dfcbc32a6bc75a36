package tablestore

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DecodeCSV reads a comma-separated table whose first record is the header.
// Any structural problem is reported as ErrMalformedTable.
func DecodeCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0 // the header fixes the column count

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}

	if len(records) == 0 {
		return Table{}, fmt.Errorf("%w: missing header", ErrMalformedTable)
	}

	table := Table{
		Header: records[0],
		Rows:   make([]Row, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// EncodeCSV writes the header followed by all rows, comma-separated, with "\n" line endings.
func EncodeCSV(w io.Writer, table Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(table.Header); err != nil {
		return err
	}

	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}
