package registeredusers

import (
	"github.com/aiswo/librarydesk/library/shared/core"
)

// RegisteredUsers represents the query result containing all registrations.
type RegisteredUsers struct {
	Users []core.UserRegistration
}

// Count returns the number of registrations.
func (r RegisteredUsers) Count() int {
	return len(r.Users)
}
