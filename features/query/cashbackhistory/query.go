package cashbackhistory

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	queryType = "CashbackHistory"
)

// Query represents the input for reading the cashback history of a customer.
type Query struct {
	CustomerName core.CustomerNameString
}

// BuildQuery creates a new Query for the given customer.
func BuildQuery(customerName core.CustomerNameString) Query {
	return Query{
		CustomerName: customerName,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
