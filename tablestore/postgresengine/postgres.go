package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/tablestore/postgresengine/internal/adapters"
)

const (
	engineName          = "postgres"
	defaultSQLTableName = "library_tables"
	dialectPostgres     = "postgres"
	colTableName        = "table_name"
	colHeader           = "header"
	colRows             = "rows"
	colUpdatedAt        = "updated_at"
	castJsonb           = "?::jsonb"
	logMsgSQLExecuted   = "executed sql for: "
	logAttrQuery        = "query"
	logActionLoad       = "load"
	logActionSave       = "save"
	logActionCreate     = "create table"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Backend stores every logical table as one row of a PostgreSQL table.
type Backend struct {
	db              adapters.DBAdapter
	sqlTableName    string
	instrumentation tablestore.Instrumentation
}

// NewBackendFromPGXPool creates a new Backend using a pgx Pool with optional configuration.
func NewBackendFromPGXPool(db *pgxpool.Pool, options ...Option) (Backend, error) {
	if db == nil {
		return Backend{}, tablestore.ErrNilDatabaseConnection
	}

	return newBackend(adapters.NewPGXAdapter(db), options...)
}

// NewBackendFromSQLDB creates a new Backend using a sql.DB with optional configuration.
func NewBackendFromSQLDB(db *sql.DB, options ...Option) (Backend, error) {
	if db == nil {
		return Backend{}, tablestore.ErrNilDatabaseConnection
	}

	return newBackend(adapters.NewSQLAdapter(db), options...)
}

// NewBackendFromSQLX creates a new Backend using a sqlx.DB with optional configuration.
func NewBackendFromSQLX(db *sqlx.DB, options ...Option) (Backend, error) {
	if db == nil {
		return Backend{}, tablestore.ErrNilDatabaseConnection
	}

	return newBackend(adapters.NewSQLXAdapter(db), options...)
}

func newBackend(db adapters.DBAdapter, options ...Option) (Backend, error) {
	b := Backend{
		db:              db,
		sqlTableName:    defaultSQLTableName,
		instrumentation: tablestore.Instrumentation{Engine: engineName},
	}

	for _, option := range options {
		if err := option(&b); err != nil {
			return Backend{}, err
		}
	}

	return b, nil
}

// CreateTableIfNotExists creates the backing table when it is missing. It never alters an existing table.
func (b Backend) CreateTableIfNotExists(ctx context.Context) error {
	query := b.buildCreateTableQuery()

	if _, err := b.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", b.sqlTableName, err)
	}

	b.logSQL(logActionCreate, query)

	return nil
}

// Load reads the named table. A table that was never saved yields tablestore.ErrTableNotFound.
func (b Backend) Load(ctx context.Context, name tablestore.TableNameString) (tablestore.Table, error) {
	ctx, obs := b.instrumentation.Start(ctx, tablestore.OperationLoad, name)

	table, err := b.load(ctx, name)
	obs.Finish(table.Len(), err)

	return table, err
}

// Save replaces the named table with a single upsert statement.
func (b Backend) Save(ctx context.Context, name tablestore.TableNameString, table tablestore.Table) error {
	ctx, obs := b.instrumentation.Start(ctx, tablestore.OperationSave, name)

	err := b.save(ctx, name, table)
	obs.Finish(table.Len(), err)

	return err
}

func (b Backend) load(ctx context.Context, name string) (tablestore.Table, error) {
	if name == "" {
		return tablestore.Table{}, tablestore.ErrEmptyTableName
	}

	query, err := b.buildSelectQuery(name)
	if err != nil {
		return tablestore.Table{}, err
	}

	rows, err := b.db.Query(ctx, query)
	if err != nil {
		return tablestore.Table{}, fmt.Errorf("failed to query table %s: %w", name, err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	b.logSQL(logActionLoad, query)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return tablestore.Table{}, fmt.Errorf("failed to query table %s: %w", name, err)
		}

		return tablestore.Table{}, fmt.Errorf("%w: %s", tablestore.ErrTableNotFound, name)
	}

	var headerJSON, rowsJSON []byte
	if err = rows.Scan(&headerJSON, &rowsJSON); err != nil {
		return tablestore.Table{}, fmt.Errorf("failed to scan table %s: %w", name, err)
	}

	return decodeTable(headerJSON, rowsJSON)
}

func (b Backend) save(ctx context.Context, name string, table tablestore.Table) error {
	if name == "" {
		return tablestore.ErrEmptyTableName
	}

	if err := table.Validate(); err != nil {
		return err
	}

	query, err := b.buildUpsertQuery(name, table)
	if err != nil {
		return err
	}

	result, err := b.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to save table %s: %w", name, err)
	}

	b.logSQL(logActionSave, query)

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected count: %w", err)
	}

	if affected != 1 {
		return fmt.Errorf("saving table %s affected %d rows, expected 1", name, affected)
	}

	return nil
}

func (b Backend) buildSelectQuery(name string) (string, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(b.sqlTableName).
		Select(colHeader, colRows).
		Where(goqu.C(colTableName).Eq(name)).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("failed to build select query: %w", err)
	}

	return query, nil
}

func (b Backend) buildUpsertQuery(name string, table tablestore.Table) (string, error) {
	headerJSON, rowsJSON, err := encodeTable(table)
	if err != nil {
		return "", err
	}

	query, _, err := goqu.Dialect(dialectPostgres).
		Insert(b.sqlTableName).
		Rows(goqu.Record{
			colTableName: name,
			colHeader:    goqu.L(castJsonb, string(headerJSON)),
			colRows:      goqu.L(castJsonb, string(rowsJSON)),
			colUpdatedAt: goqu.L("NOW()"),
		}).
		OnConflict(goqu.DoUpdate(colTableName, goqu.Record{
			colHeader:    goqu.L("EXCLUDED." + colHeader),
			colRows:      goqu.L("EXCLUDED." + colRows),
			colUpdatedAt: goqu.L("EXCLUDED." + colUpdatedAt),
		})).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("failed to build upsert query: %w", err)
	}

	return query, nil
}

func (b Backend) buildCreateTableQuery() string {
	return fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %q (%s TEXT PRIMARY KEY, %s JSONB NOT NULL, %s JSONB NOT NULL, %s TIMESTAMPTZ NOT NULL DEFAULT NOW())`,
		b.sqlTableName, colTableName, colHeader, colRows, colUpdatedAt,
	)
}

func (b Backend) logSQL(action, query string) {
	if b.instrumentation.Logger != nil {
		b.instrumentation.Logger.Debug(logMsgSQLExecuted+action, logAttrQuery, query)
	}
}

func encodeTable(table tablestore.Table) ([]byte, []byte, error) {
	headerJSON, err := json.Marshal(table.Header)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode header: %w", err)
	}

	rows := table.Rows
	if rows == nil {
		rows = []tablestore.Row{}
	}

	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode rows: %w", err)
	}

	return headerJSON, rowsJSON, nil
}

func decodeTable(headerJSON, rowsJSON []byte) (tablestore.Table, error) {
	var table tablestore.Table

	if err := json.Unmarshal(headerJSON, &table.Header); err != nil {
		return tablestore.Table{}, fmt.Errorf("%w: header: %w", tablestore.ErrMalformedTable, err)
	}

	if err := json.Unmarshal(rowsJSON, &table.Rows); err != nil {
		return tablestore.Table{}, fmt.Errorf("%w: rows: %w", tablestore.ErrMalformedTable, err)
	}

	if err := table.Validate(); err != nil {
		if errors.Is(err, tablestore.ErrMalformedTable) {
			return tablestore.Table{}, err
		}

		return tablestore.Table{}, fmt.Errorf("%w: %w", tablestore.ErrMalformedTable, err)
	}

	return table, nil
}

var _ tablestore.Backend = Backend{}
