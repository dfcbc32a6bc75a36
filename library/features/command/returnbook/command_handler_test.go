package returnbook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/library/features/command/returnbook"
	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/testutil/testdoubles"
)

const ledgerTable = "library_data"

func givenLedgerTable(backend *testdoubles.MemoryBackend, rows ...tablestore.Row) {
	backend.Put(ledgerTable, tablestore.BuildTable(shell.LedgerHeader(), rows...))
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	givenLedgerTable(backend, tablestore.Row{"B-1", "Dune", "Ada", "2024-03-01", ""})
	handler := returnbook.NewCommandHandler(backend, ledgerTable)

	// act
	result, err := handler.Handle(context.Background(), returnbook.BuildCommand("B-1", fakeClock.AddDate(0, 0, 4)))

	// assert
	require.NoError(t, err)
	assert.True(t, result.Succeeded())

	stored, _ := backend.Get(ledgerTable)
	assert.Equal(t, []tablestore.Row{{"B-1", "Dune", "Ada", "2024-03-01", "2024-03-05"}}, stored.Rows)
}

func Test_CommandHandler_Handle_AlreadyReturned_LeavesTableUnchanged(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	givenLedgerTable(backend, tablestore.Row{"B-1", "Dune", "Ada", "2024-03-01", "2024-03-02"})
	handler := returnbook.NewCommandHandler(backend, ledgerTable)

	// act
	result, err := handler.Handle(context.Background(), returnbook.BuildCommand("B-1", fakeClock.AddDate(0, 0, 9)))

	// assert
	assert.NoError(t, err)
	assert.ErrorIs(t, result.Reason, core.ErrBookAlreadyReturned)
	assert.Equal(t, 0, backend.SaveCalls())
}

func Test_CommandHandler_Handle_NeverIssued_OnMissingTable(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	handler := returnbook.NewCommandHandler(backend, ledgerTable)

	// act
	result, err := handler.Handle(context.Background(), returnbook.BuildCommand("B-1", fakeClock))

	// assert
	assert.NoError(t, err)
	assert.ErrorIs(t, result.Reason, core.ErrBookNeverIssued)

	stored, ok := backend.Get(ledgerTable)
	require.True(t, ok, "the missing table is created with its header")
	assert.Equal(t, shell.LedgerHeader(), stored.Header)
}
