package core

// UserRegistration is one row of the registry. Identical registrations may exist side by side.
type UserRegistration struct {
	FullName    string
	Class       string
	DateOfBirth DateTS
	Address     string
	PhoneNumber string
	Email       string
}

// BuildUserRegistration creates a UserRegistration with DateOfBirth normalized to a date.
func BuildUserRegistration(fullName, class string, dateOfBirth DateTS, address, phoneNumber, email string) UserRegistration {
	return UserRegistration{
		FullName:    fullName,
		Class:       class,
		DateOfBirth: ToDate(dateOfBirth),
		Address:     address,
		PhoneNumber: phoneNumber,
		Email:       email,
	}
}
