package registeredusers

import (
	"slices"

	"github.com/aiswo/librarydesk/library/shared/core"
)

// Project returns every registration of the registry, as stored.
func Project(registry core.Registry, _ Query) RegisteredUsers {
	return RegisteredUsers{Users: slices.Clone(registry.Users)}
}
