package registeruser

import (
	"time"

	"github.com/aiswo/librarydesk/library/shared/core"
)

const (
	commandType = "RegisterUser"
)

// Command represents the intent to register a library user.
type Command struct {
	Registration core.UserRegistration
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(fullName, class string, dateOfBirth time.Time, address, phoneNumber, email string) Command {
	return Command{
		Registration: core.BuildUserRegistration(fullName, class, dateOfBirth, address, phoneNumber, email),
	}
}
