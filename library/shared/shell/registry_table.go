package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/tablestore"
)

const (
	registryColFullName    = "Full Name"
	registryColClass       = "Class"
	registryColDateOfBirth = "Date of Birth"
	registryColAddress     = "Address"
	registryColPhoneNumber = "Phone Number"
	registryColEmail       = "Email"
)

// RegistryHeader returns the persisted column header of the registry table.
func RegistryHeader() []string {
	return []string{
		registryColFullName,
		registryColClass,
		registryColDateOfBirth,
		registryColAddress,
		registryColPhoneNumber,
		registryColEmail,
	}
}

// RegistryFromTable converts a stored table into a Registry.
// Only a wrong header or a ragged row fails the table, an unreadable Date of Birth reads as the zero date.
func RegistryFromTable(table tablestore.Table) (core.Registry, error) {
	if err := table.ExpectHeader(RegistryHeader()); err != nil {
		return core.Registry{}, err
	}

	if err := table.Validate(); err != nil {
		return core.Registry{}, err
	}

	users := make([]core.UserRegistration, 0, table.Len())

	for _, row := range table.Rows {
		users = append(users, core.UserRegistration{
			FullName:    row[0],
			Class:       row[1],
			DateOfBirth: parseDateCell(row[2]),
			Address:     row[3],
			PhoneNumber: row[4],
			Email:       row[5],
		})
	}

	return core.BuildRegistry(users...), nil
}

// RegistryToTable converts a Registry into a table with the registry header.
func RegistryToTable(registry core.Registry) tablestore.Table {
	rows := make([]tablestore.Row, 0, registry.Len())

	for _, u := range registry.Users {
		rows = append(rows, tablestore.Row{
			u.FullName,
			u.Class,
			FormatDate(u.DateOfBirth),
			u.Address,
			u.PhoneNumber,
			u.Email,
		})
	}

	return tablestore.BuildTable(RegistryHeader(), rows...)
}

// LoadRegistry reads the registry table, following the same rules as LoadLedger.
func LoadRegistry(ctx context.Context, backend tablestore.Backend, name tablestore.TableNameString) (core.Registry, error) {
	table, err := backend.Load(ctx, name)
	if errors.Is(err, tablestore.ErrTableNotFound) {
		return core.Registry{}, initializeTable(ctx, backend, name, RegistryHeader())
	}

	if err != nil {
		return core.Registry{}, fmt.Errorf("%w: registry %s: %w", ErrTableUnreadable, name, err)
	}

	registry, err := RegistryFromTable(table)
	if err != nil {
		return core.Registry{}, fmt.Errorf("%w: registry %s: %w", ErrTableUnreadable, name, err)
	}

	return registry, nil
}

// SaveRegistry replaces the whole registry table.
func SaveRegistry(ctx context.Context, backend tablestore.Backend, name tablestore.TableNameString, registry core.Registry) error {
	if err := backend.Save(ctx, name, RegistryToTable(registry)); err != nil {
		return fmt.Errorf("save registry %s: %w", name, err)
	}

	return nil
}
