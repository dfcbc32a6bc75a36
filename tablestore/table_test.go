package tablestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aiswo/librarydesk/tablestore"
)

func Test_Table_Validate_Success(t *testing.T) {
	// arrange
	table := tablestore.BuildTable(
		[]string{"BookID", "Title"},
		tablestore.Row{"B-1", "Dune"},
		tablestore.Row{"B-2", ""},
	)

	// act
	err := table.Validate()

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func Test_Table_Validate_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		table       tablestore.Table
		expectedErr error
	}{
		{
			name:        "empty header",
			table:       tablestore.BuildTable(nil),
			expectedErr: tablestore.ErrEmptyHeader,
		},
		{
			name:        "short row",
			table:       tablestore.BuildTable([]string{"A", "B"}, tablestore.Row{"1"}),
			expectedErr: tablestore.ErrMalformedTable,
		},
		{
			name:        "long row",
			table:       tablestore.BuildTable([]string{"A"}, tablestore.Row{"1", "2"}),
			expectedErr: tablestore.ErrMalformedTable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_Table_ExpectHeader(t *testing.T) {
	table := tablestore.BuildTable([]string{"A", "B"})

	assert.NoError(t, table.ExpectHeader([]string{"A", "B"}))
	assert.ErrorIs(t, table.ExpectHeader([]string{"B", "A"}), tablestore.ErrHeaderMismatch)
	assert.ErrorIs(t, table.ExpectHeader([]string{"A"}), tablestore.ErrHeaderMismatch)
}

func Test_Table_WithAppendedRow_DoesNotMutateOriginal(t *testing.T) {
	// arrange
	original := tablestore.BuildTable([]string{"A"}, tablestore.Row{"1"})

	// act
	extended := original.WithAppendedRow(tablestore.Row{"2"})
	extended.Rows[0][0] = "changed"

	// assert
	assert.Equal(t, 1, original.Len())
	assert.Equal(t, "1", original.Rows[0][0])
	assert.Equal(t, 2, extended.Len())
	assert.Equal(t, tablestore.Row{"2"}, extended.Rows[1])
}
