package cashbackbalance

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	queryType = "CashbackBalance"
)

// Query represents the input for looking up the cashback balance of a customer.
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
