package actionlog

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	queryType = "ActionLog"
)

// Query represents the input for reading the action journal.
// An empty CustomerName selects the actions of all customers.
type Query struct {
	CustomerName core.CustomerNameString
}

// BuildQuery creates a new Query for all customers.
func BuildQuery() Query {
	return Query{}
}

// BuildQueryForCustomer creates a new Query restricted to one customer.
func BuildQueryForCustomer(customerName core.CustomerNameString) Query {
	return Query{
		CustomerName: customerName,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
