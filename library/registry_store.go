package library

import (
	"context"

	"github.com/aiswo/librarydesk/library/features/command/registeruser"
	"github.com/aiswo/librarydesk/library/features/query/registeredusers"
	"github.com/aiswo/librarydesk/library/shared/core"
	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/library/shared/shell/observable"
	"github.com/aiswo/librarydesk/tablestore"
)

// RegistryStore persists user registrations.
type RegistryStore struct {
	backend   tablestore.Backend
	tableName tablestore.TableNameString
	register  *observable.CommandWrapper[registeruser.Command]
	users     *observable.QueryWrapper[registeredusers.Query, registeredusers.RegisteredUsers]
}

// NewRegistryStore creates a RegistryStore on config.Backend and config.RegistryTable.
func NewRegistryStore(config StoreConfig, opts ...Option) (*RegistryStore, error) {
	o, err := buildOptions(config, opts)
	if err != nil {
		return nil, err
	}

	tableName := config.registryTable()

	register, err := wrapCommand[registeruser.Command](registeruser.NewCommandHandler(config.Backend, tableName), o)
	if err != nil {
		return nil, err
	}

	users, err := wrapQuery[registeredusers.Query, registeredusers.RegisteredUsers](
		registeredusers.NewQueryHandler(config.Backend, tableName),
		o,
	)
	if err != nil {
		return nil, err
	}

	return &RegistryStore{
		backend:   config.Backend,
		tableName: tableName,
		register:  register,
		users:     users,
	}, nil
}

// TableName returns the name of the registry table.
func (s *RegistryStore) TableName() tablestore.TableNameString {
	return s.tableName
}

// Load reads all registrations. A missing table is created with its header.
func (s *RegistryStore) Load(ctx context.Context) (core.Registry, error) {
	return shell.LoadRegistry(ctx, s.backend, s.tableName)
}

// RegisterUser appends the registration. It returns false only when saving failed.
func (s *RegistryStore) RegisterUser(ctx context.Context, registration core.UserRegistration) (bool, error) {
	command := registeruser.BuildCommand(
		registration.FullName,
		registration.Class,
		registration.DateOfBirth,
		registration.Address,
		registration.PhoneNumber,
		registration.Email,
	)

	result, err := s.register.Handle(ctx, command)

	return result.Succeeded(), err
}

// ListUsers returns all registrations in stored order.
func (s *RegistryStore) ListUsers(ctx context.Context) ([]core.UserRegistration, error) {
	result, err := s.users.Handle(ctx, registeredusers.BuildQuery())

	return result.Users, err
}
