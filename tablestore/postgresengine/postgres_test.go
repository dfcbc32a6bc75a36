package postgresengine_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/tablestore/postgresengine"
)

const testDSNEnv = "LIBRARYDESK_TEST_POSTGRES_DSN"

func Test_FactoryFunctions_ShouldFail_WithNilDatabaseConnection(t *testing.T) {
	testCases := []struct {
		name        string
		factoryFunc func() (postgresengine.Backend, error)
	}{
		{
			name: "NewBackendFromPGXPool with nil",
			factoryFunc: func() (postgresengine.Backend, error) {
				return postgresengine.NewBackendFromPGXPool(nil)
			},
		},
		{
			name: "NewBackendFromSQLDB with nil",
			factoryFunc: func() (postgresengine.Backend, error) {
				return postgresengine.NewBackendFromSQLDB(nil)
			},
		},
		{
			name: "NewBackendFromSQLX with nil",
			factoryFunc: func() (postgresengine.Backend, error) {
				return postgresengine.NewBackendFromSQLX(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := tc.factoryFunc()

			// assert
			assert.ErrorIs(t, err, tablestore.ErrNilDatabaseConnection)
		})
	}
}

func Test_FactoryFunctions_ShouldFail_WithInvalidTableName(t *testing.T) {
	db := sqlx.NewDb(&sql.DB{}, "postgres")

	testCases := []struct {
		name      string
		tableName string
		wantErr   error
	}{
		{name: "empty", tableName: "", wantErr: tablestore.ErrEmptyTableName},
		{name: "injection attempt", tableName: "x; DROP TABLE y", wantErr: postgresengine.ErrInvalidSQLTableName},
		{name: "uppercase", tableName: "Library", wantErr: postgresengine.ErrInvalidSQLTableName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := postgresengine.NewBackendFromSQLX(db, postgresengine.WithTableName(tc.tableName))

			// assert
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_Integration_AllAdapters_SaveThenLoad(t *testing.T) {
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skip(testDSNEnv + " not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer sqlDB.Close() //nolint:errcheck

	backends := map[string]func() (postgresengine.Backend, error){
		"pgx": func() (postgresengine.Backend, error) {
			return postgresengine.NewBackendFromPGXPool(pool, postgresengine.WithTableName("librarydesk_it"))
		},
		"sql": func() (postgresengine.Backend, error) {
			return postgresengine.NewBackendFromSQLDB(sqlDB, postgresengine.WithTableName("librarydesk_it"))
		},
		"sqlx": func() (postgresengine.Backend, error) {
			return postgresengine.NewBackendFromSQLX(sqlx.NewDb(sqlDB, "postgres"), postgresengine.WithTableName("librarydesk_it"))
		},
	}

	for name, create := range backends {
		t.Run(name, func(t *testing.T) {
			// arrange
			backend, err := create()
			require.NoError(t, err)
			require.NoError(t, backend.CreateTableIfNotExists(ctx))
			tableName := "ledger_" + name
			first := tablestore.BuildTable(
				[]string{"BookID", "Title", "IssuedTo", "IssueDate", "ReturnDate"},
				tablestore.Row{"B-1", "Dune", "Ada", "2024-03-01", ""},
			)
			second := first.WithAppendedRow(tablestore.Row{"B-2", "Emma", "Linus", "2024-03-02", "2024-03-04"})

			// act
			require.NoError(t, backend.Save(ctx, tableName, first))
			require.NoError(t, backend.Save(ctx, tableName, second))
			loaded, err := backend.Load(ctx, tableName)

			// assert
			require.NoError(t, err)
			assert.Equal(t, second.Header, loaded.Header)
			assert.Equal(t, second.Rows, loaded.Rows)

			_, err = backend.Load(ctx, "never_saved_"+name)
			assert.ErrorIs(t, err, tablestore.ErrTableNotFound)
		})
	}
}
