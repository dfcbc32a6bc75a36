package tablestore

import (
	"errors"
)

var (
	// ErrEmptyTableName is returned when an operation is called with an empty table name.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrInvalidTableName is returned when a table name cannot be used as a storage key.
	ErrInvalidTableName = errors.New("invalid table name supplied")

	// ErrNilDatabaseConnection is returned when an engine is constructed without a database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrNilBackend is returned when a store is constructed without a Backend.
	ErrNilBackend = errors.New("table backend must not be nil")

	// ErrTableNotFound is returned by Backend.Load when the named table does not exist yet.
	ErrTableNotFound = errors.New("table not found")

	// ErrMalformedTable is returned when stored data cannot be parsed into a well-formed Table.
	ErrMalformedTable = errors.New("malformed table")

	// ErrHeaderMismatch is returned when a stored header differs from the expected columns.
	ErrHeaderMismatch = errors.New("table header does not match expected columns")

	// ErrEmptyHeader is returned when a Table without columns is saved.
	ErrEmptyHeader = errors.New("table header must not be empty")
)

// TableNameString is the name under which a Backend persists a table.
type TableNameString = string
