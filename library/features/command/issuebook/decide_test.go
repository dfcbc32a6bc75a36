package issuebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/library/features/command/issuebook"
	"github.com/aiswo/librarydesk/library/shared/core"
)

var fakeClock = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func Test_Decide_Success_WhenBookIDIsNew(t *testing.T) {
	// arrange
	ledger := core.BuildLedger(core.BuildBookIssueRecord("B-1", "Dune", "Ada", fakeClock))
	command := issuebook.BuildCommand("B-2", "Emma", "Linus", fakeClock.Add(24*time.Hour))

	// act
	result := issuebook.Decide(ledger, command)

	// assert
	require.True(t, result.HasStateToSave())
	require.Equal(t, 2, result.State.Len())

	issued := result.State.Records[1]
	assert.Equal(t, "B-2", issued.BookID)
	assert.Equal(t, "Emma", issued.Title)
	assert.Equal(t, "Linus", issued.IssuedTo)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), issued.IssueDate)
	assert.False(t, issued.IsReturned())
	assert.Equal(t, 1, ledger.Len(), "the input ledger is not modified")
}

func Test_Decide_Success_OnEmptyLedger(t *testing.T) {
	// act
	result := issuebook.Decide(core.BuildLedger(), issuebook.BuildCommand("B-1", "Dune", "Ada", fakeClock))

	// assert
	require.True(t, result.HasStateToSave())
	assert.Equal(t, 1, result.State.Len())
}

func Test_Decide_Rejected_WhenBookIDIsOutstanding(t *testing.T) {
	// arrange
	ledger := core.BuildLedger(core.BuildBookIssueRecord("B-1", "Dune", "Ada", fakeClock))

	// act
	result := issuebook.Decide(ledger, issuebook.BuildCommand("B-1", "Dune", "Grace", fakeClock))

	// assert
	assert.True(t, result.IsRejected())
	assert.ErrorIs(t, result.Err, core.ErrBookIDAlreadyExists)
}

func Test_Decide_Rejected_WhenBookIDWasReturned(t *testing.T) {
	// arrange
	returned := core.BuildBookIssueRecord("B-1", "Dune", "Ada", fakeClock)
	returned.ReturnDate = core.ToDate(fakeClock.Add(48 * time.Hour))
	ledger := core.BuildLedger(returned)

	// act
	result := issuebook.Decide(ledger, issuebook.BuildCommand("B-1", "Dune", "Grace", fakeClock.Add(72*time.Hour)))

	// assert
	assert.True(t, result.IsRejected())
	assert.ErrorIs(t, result.Err, core.ErrBookIDAlreadyExists)
}
