package issuebook

import (
	"context"
	"errors"

	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/tablestore"
)

// CommandHandler runs Load -> Decide -> Save against the ledger table.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	backend   tablestore.Backend
	tableName tablestore.TableNameString
}

// NewCommandHandler creates a new CommandHandler working on the named ledger table.
func NewCommandHandler(backend tablestore.Backend, tableName tablestore.TableNameString) CommandHandler {
	return CommandHandler{
		backend:   backend,
		tableName: tableName,
	}
}

// Handle issues the book unless the BookID is already in the ledger.
// A degraded load is returned as error next to the outcome decided on the empty ledger.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	ledger, loadErr := shell.LoadLedger(ctx, h.backend, h.tableName)
	degraded := loadErr != nil

	result := Decide(ledger, command)
	if result.IsRejected() {
		return shell.NewRejectedResult(result.Err, degraded), loadErr
	}

	if err := shell.SaveLedger(ctx, h.backend, h.tableName, result.State); err != nil {
		return shell.NewErrorResult(degraded), errors.Join(loadErr, err)
	}

	return shell.NewSuccessResult(degraded), loadErr
}

var _ shell.CoreCommandHandler[Command] = CommandHandler{}
