package registeruser_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/library/features/command/registeruser"
	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/testutil/testdoubles"
)

const registryTable = "registration_newuser"

func Test_CommandHandler_Handle_IdenticalRegistrationsAreBothStored(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	handler := registeruser.NewCommandHandler(backend, registryTable)

	// act
	first, err1 := handler.Handle(context.Background(), buildAdaCommand())
	second, err2 := handler.Handle(context.Background(), buildAdaCommand())

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, first.Succeeded())
	assert.True(t, second.Succeeded())

	stored, _ := backend.Get(registryTable)
	assert.Equal(t, shell.RegistryHeader(), stored.Header)
	assert.Equal(t, []tablestore.Row{
		{"Ada Lovelace", "10B", "2010-12-10", "1 Main St", "555-0100", "ada@example.org"},
		{"Ada Lovelace", "10B", "2010-12-10", "1 Main St", "555-0100", "ada@example.org"},
	}, stored.Rows)
}

func Test_CommandHandler_Handle_SaveFailure(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	backend.Put(registryTable, tablestore.BuildTable(shell.RegistryHeader()))
	backend.SaveErr = errors.New("disk full")
	handler := registeruser.NewCommandHandler(backend, registryTable)

	// act
	result, err := handler.Handle(context.Background(), buildAdaCommand())

	// assert
	assert.ErrorIs(t, err, backend.SaveErr)
	assert.Equal(t, shell.StatusError, result.Outcome)
}
