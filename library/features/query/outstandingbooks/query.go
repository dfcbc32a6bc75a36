package outstandingbooks

const (
	queryType = "OutstandingBooks"
)

// Query represents the intent to list the books currently out.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
