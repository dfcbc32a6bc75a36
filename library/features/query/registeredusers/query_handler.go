package registeredusers

import (
	"context"

	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/tablestore"
)

// QueryHandler runs Load -> Project against the registry table.
type QueryHandler struct {
	backend   tablestore.Backend
	tableName tablestore.TableNameString
}

// NewQueryHandler creates a new QueryHandler reading the named registry table.
func NewQueryHandler(backend tablestore.Backend, tableName tablestore.TableNameString) QueryHandler {
	return QueryHandler{
		backend:   backend,
		tableName: tableName,
	}
}

// Handle returns all registrations. A degraded load yields an empty result and the load error.
func (h QueryHandler) Handle(ctx context.Context, query Query) (RegisteredUsers, error) {
	registry, err := shell.LoadRegistry(ctx, h.backend, h.tableName)

	return Project(registry, query), err
}

var _ shell.CoreQueryHandler[Query, RegisteredUsers] = QueryHandler{}
