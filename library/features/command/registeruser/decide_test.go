package registeruser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/library/features/command/registeruser"
	"github.com/aiswo/librarydesk/library/shared/core"
)

var dateOfBirth = time.Date(2010, 12, 10, 0, 0, 0, 0, time.UTC)

func buildAdaCommand() registeruser.Command {
	return registeruser.BuildCommand("Ada Lovelace", "10B", dateOfBirth, "1 Main St", "555-0100", "ada@example.org")
}

func Test_Decide_AlwaysAppends(t *testing.T) {
	// arrange
	command := buildAdaCommand()
	registry := core.BuildRegistry(command.Registration)

	// act
	result := registeruser.Decide(registry, command)

	// assert
	require.True(t, result.HasStateToSave())
	assert.Equal(t, []core.UserRegistration{command.Registration, command.Registration}, result.State.Users)
}
