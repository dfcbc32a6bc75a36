package shell

import (
	"context"
)

// Command represents the contract for all command types.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// Query represents the contract for all query types.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types (projections).
// Count is the number of items the projection returned.
type QueryResult interface {
	Count() int
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic:
// load the table, decide, save the table.
// Implementations stay free of observability; wrap them with observable.CommandWrapper for that.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// CoreQueryHandler defines the contract for components that answer queries with pure business logic:
// load the table, project.
type CoreQueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
