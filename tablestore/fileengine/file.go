package fileengine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aiswo/librarydesk/tablestore"
)

const (
	engineName       = "file"
	defaultDirectory = "."
	defaultExtension = ".csv"
	defaultFileMode  = os.FileMode(0o644)
	dirMode          = os.FileMode(0o755)
)

// Backend stores every table as one CSV file in a directory.
type Backend struct {
	dir             string
	extension       string
	fileMode        os.FileMode
	instrumentation tablestore.Instrumentation
}

// NewBackend creates a file Backend with optional configuration.
func NewBackend(options ...Option) (Backend, error) {
	b := Backend{
		dir:             defaultDirectory,
		extension:       defaultExtension,
		fileMode:        defaultFileMode,
		instrumentation: tablestore.Instrumentation{Engine: engineName},
	}

	for _, option := range options {
		if err := option(&b); err != nil {
			return Backend{}, err
		}
	}

	return b, nil
}

// Path returns the file path used for the named table.
func (b Backend) Path(name tablestore.TableNameString) (string, error) {
	if name == "" {
		return "", tablestore.ErrEmptyTableName
	}

	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", tablestore.ErrInvalidTableName, name)
	}

	return filepath.Join(b.dir, name+b.extension), nil
}

// Load reads the whole table file. A missing file yields tablestore.ErrTableNotFound.
func (b Backend) Load(ctx context.Context, name tablestore.TableNameString) (tablestore.Table, error) {
	_, obs := b.instrumentation.Start(ctx, tablestore.OperationLoad, name)

	table, err := b.load(name)
	obs.Finish(table.Len(), err)

	return table, err
}

// Save replaces the whole table file through a temporary file and a rename.
func (b Backend) Save(ctx context.Context, name tablestore.TableNameString, table tablestore.Table) error {
	_, obs := b.instrumentation.Start(ctx, tablestore.OperationSave, name)

	err := b.save(ctx, name, table)
	obs.Finish(table.Len(), err)

	return err
}

func (b Backend) load(name string) (tablestore.Table, error) {
	path, err := b.Path(name)
	if err != nil {
		return tablestore.Table{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tablestore.Table{}, fmt.Errorf("%w: %s", tablestore.ErrTableNotFound, path)
		}

		return tablestore.Table{}, fmt.Errorf("failed to open table file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only handle

	table, err := tablestore.DecodeCSV(file)
	if err != nil {
		return tablestore.Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

func (b Backend) save(ctx context.Context, name string, table tablestore.Table) error {
	path, err := b.Path(name)
	if err != nil {
		return err
	}

	if err = table.Validate(); err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = os.MkdirAll(b.dir, dirMode); err != nil {
		return fmt.Errorf("failed to create table directory: %w", err)
	}

	tmpPath := filepath.Join(b.dir, "."+name+"."+uuid.NewString()+".tmp")

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, b.fileMode)
	if err != nil {
		return fmt.Errorf("failed to create temporary table file: %w", err)
	}

	if err = writeAndSync(tmp, table); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace table file: %w", err)
	}

	return nil
}

func writeAndSync(file *os.File, table tablestore.Table) error {
	if err := tablestore.EncodeCSV(file, table); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write table file: %w", err)
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to sync table file: %w", err)
	}

	return file.Close()
}

var _ tablestore.Backend = Backend{}
