package registeruser

import (
	"github.com/aiswo/librarydesk/library/shared/core"
)

// Decide appends the registration to the registry. There is no rule that can reject it.
func Decide(registry core.Registry, command Command) core.DecisionResult[core.Registry] {
	return core.SuccessDecision(registry.WithRegistered(command.Registration))
}
