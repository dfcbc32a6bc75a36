package core

// Registry holds all user registrations in stored order.
type Registry struct {
	Users []UserRegistration
}

// BuildRegistry creates a Registry from registrations.
func BuildRegistry(users ...UserRegistration) Registry {
	return Registry{Users: users}
}

// Len returns the number of registrations.
func (r Registry) Len() int {
	return len(r.Users)
}

// WithRegistered returns a copy of the registry with user appended.
func (r Registry) WithRegistered(user UserRegistration) Registry {
	users := make([]UserRegistration, 0, len(r.Users)+1)
	users = append(users, r.Users...)

	return Registry{Users: append(users, user)}
}
