package outstandingbooks

import (
	"context"

	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/tablestore"
)

// QueryHandler runs Load -> Project against the ledger table.
type QueryHandler struct {
	backend   tablestore.Backend
	tableName tablestore.TableNameString
}

// NewQueryHandler creates a new QueryHandler reading the named ledger table.
func NewQueryHandler(backend tablestore.Backend, tableName tablestore.TableNameString) QueryHandler {
	return QueryHandler{
		backend:   backend,
		tableName: tableName,
	}
}

// Handle returns the outstanding books. A degraded load yields an empty result and the load error.
func (h QueryHandler) Handle(ctx context.Context, query Query) (OutstandingBooks, error) {
	ledger, err := shell.LoadLedger(ctx, h.backend, h.tableName)

	return Project(ledger, query), err
}

var _ shell.CoreQueryHandler[Query, OutstandingBooks] = QueryHandler{}
