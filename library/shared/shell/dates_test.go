package shell_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/library/shared/shell"
)

func Test_ParseDate_AcceptedLayouts(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		value string
	}{
		{name: "date only", value: "2024-03-01"},
		{name: "date and time", value: "2024-03-01 17:45:00"},
		{name: "rfc3339", value: "2024-03-01T17:45:00+02:00"},
		{name: "surrounding spaces", value: " 2024-03-01 "},
		{name: "single digits", value: "2024-3-1"},
		{name: "slashed year first", value: "2024/03/01"},
		{name: "slashed month first", value: "03/01/2024"},
		{name: "slashed single digits", value: "3/1/2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := shell.ParseDate(tc.value)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func Test_ParseDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "NaT", "yesterday", "2024-13-01", "31/01/2024"} {
		_, err := shell.ParseDate(value)
		assert.ErrorIs(t, err, shell.ErrInvalidDate, value)
	}
}

func Test_FormatDate(t *testing.T) {
	assert.Equal(t, "2024-03-01", shell.FormatDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", shell.FormatDate(core.DateTS{}))
}
