package activecontracts

const (
	queryType = "ActiveContracts"
)

// Query represents the input for listing all active contracts.
// It has no parameters.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
