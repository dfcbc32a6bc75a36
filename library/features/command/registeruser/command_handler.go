package registeruser

import (
	"context"
	"errors"

	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/tablestore"
)

// CommandHandler runs Load -> Decide -> Save against the registry table.
type CommandHandler struct {
	backend   tablestore.Backend
	tableName tablestore.TableNameString
}

// NewCommandHandler creates a new CommandHandler working on the named registry table.
func NewCommandHandler(backend tablestore.Backend, tableName tablestore.TableNameString) CommandHandler {
	return CommandHandler{
		backend:   backend,
		tableName: tableName,
	}
}

// Handle appends the registration and saves the registry. Only a failed save makes it unsuccessful.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	registry, loadErr := shell.LoadRegistry(ctx, h.backend, h.tableName)
	degraded := loadErr != nil

	result := Decide(registry, command)

	if err := shell.SaveRegistry(ctx, h.backend, h.tableName, result.State); err != nil {
		return shell.NewErrorResult(degraded), errors.Join(loadErr, err)
	}

	return shell.NewSuccessResult(degraded), loadErr
}

var _ shell.CoreCommandHandler[Command] = CommandHandler{}
