package library_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/library"
	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/tablestore/fileengine"
	"github.com/aiswo/librarydesk/testutil/testdoubles"
)

func buildRegistration() core.UserRegistration {
	return core.BuildUserRegistration(
		"Ada Lovelace",
		"10B",
		time.Date(2010, 12, 10, 0, 0, 0, 0, time.UTC),
		"1 Main St",
		"555-0100",
		"ada@example.org",
	)
}

func Test_NewRegistryStore_NilBackend(t *testing.T) {
	// act
	store, err := library.NewRegistryStore(library.StoreConfig{})

	// assert
	assert.ErrorIs(t, err, tablestore.ErrNilBackend)
	assert.Nil(t, store)
}

func Test_RegistryStore_RegisterUser_IdenticalRowsAreAppended(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	store, err := library.NewRegistryStore(library.StoreConfig{Backend: backend})
	require.NoError(t, err)
	ctx := context.Background()

	// act
	first, err1 := store.RegisterUser(ctx, buildRegistration())
	second, err2 := store.RegisterUser(ctx, buildRegistration())

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, first)
	assert.True(t, second)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.UserRegistration{buildRegistration(), buildRegistration()}, users)
}

func Test_RegistryStore_Load_DegradedOnUnreadableTable(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	backend.Put(library.DefaultRegistryTable, tablestore.Table{
		Header: shell.RegistryHeader(),
		Rows:   []tablestore.Row{{"Ada Lovelace", "10B"}},
	})
	logSpy := testdoubles.NewLogHandlerSpy()
	store, err := library.NewRegistryStore(
		library.StoreConfig{Backend: backend},
		library.WithLogger(slog.New(logSpy)),
	)
	require.NoError(t, err)

	// act
	registry, loadErr := store.Load(context.Background())
	users, listErr := store.ListUsers(context.Background())

	// assert
	assert.ErrorIs(t, loadErr, shell.ErrTableUnreadable)
	assert.ErrorIs(t, loadErr, tablestore.ErrMalformedTable)
	assert.Equal(t, 0, registry.Len())
	assert.ErrorIs(t, listErr, shell.ErrTableUnreadable)
	assert.Empty(t, users)
	assert.True(t, logSpy.HasLog(slog.LevelWarn, shell.LogMsgDegradedLoad))
}

func Test_RegistryStore_RegisterUser_ZeroDateOfBirthKeepsEarlierRows(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	store, err := library.NewRegistryStore(library.StoreConfig{Backend: backend})
	require.NoError(t, err)
	ctx := context.Background()
	bob := core.BuildUserRegistration("Bob", "11A", time.Time{}, "", "", "")
	cy := core.BuildUserRegistration("Cy", "9C", time.Date(2011, 1, 2, 0, 0, 0, 0, time.UTC), "", "", "")

	// act
	for _, registration := range []core.UserRegistration{buildRegistration(), bob, cy} {
		ok, registerErr := store.RegisterUser(ctx, registration)
		require.NoError(t, registerErr)
		require.True(t, ok)
	}

	users, err := store.ListUsers(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []core.UserRegistration{buildRegistration(), bob, cy}, users)
}

func Test_RegistryStore_HandEditedDateOfBirthKeepsRows(t *testing.T) {
	// arrange
	backend := testdoubles.NewMemoryBackend()
	backend.Put(library.DefaultRegistryTable, tablestore.BuildTable(
		shell.RegistryHeader(),
		tablestore.Row{"Ada Lovelace", "10B", "10th Dec 2010", "1 Main St", "555-0100", "ada@example.org"},
	))
	store, err := library.NewRegistryStore(library.StoreConfig{Backend: backend})
	require.NoError(t, err)

	// act
	ok, registerErr := store.RegisterUser(context.Background(), buildRegistration())

	// assert
	require.NoError(t, registerErr)
	assert.True(t, ok)

	stored, _ := backend.Get(library.DefaultRegistryTable)
	require.Len(t, stored.Rows, 2)
	assert.Equal(t, "Ada Lovelace", stored.Rows[0][0])
	assert.Equal(t, "ada@example.org", stored.Rows[0][5])
}

func Test_RegistryStore_FileEngineRoundTrip(t *testing.T) {
	// arrange
	backend, err := fileengine.NewBackend(fileengine.WithDirectory(t.TempDir()))
	require.NoError(t, err)
	config := library.StoreConfig{Backend: backend, RegistryTable: "members"}
	store, err := library.NewRegistryStore(config)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.RegisterUser(ctx, buildRegistration())
	require.NoError(t, err)

	// act
	reopened, err := library.NewRegistryStore(config)
	require.NoError(t, err)
	registry, err := reopened.Load(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []core.UserRegistration{buildRegistration()}, registry.Users)

	path, err := backend.Path("members")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
