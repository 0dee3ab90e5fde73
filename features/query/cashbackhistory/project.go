package cashbackhistory

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Project copies the customer's requests out of the state and sums the fulfilled amounts.
//
// Query Logic:
//
//	GIVEN: The cashback history slice of the ledger state
//	WHEN: CashbackHistory query is executed for a customer
//	THEN: The customer's requests are returned in the order they were made
//	INCLUDES: Fulfilled and not fulfilled requests
//	EXCLUDES: Requests of other customers
func Project(state core.State, query Query) CashbackHistory {
	requests := slices.Clone(state.CashbackHistory.RequestsOf(query.CustomerName))
	if requests == nil {
		requests = core.CashbackRequests{}
	}

	fulfilledTotal := decimal.Zero
	for _, request := range requests {
		if request.Status == core.RequestFulfilled {
			fulfilledTotal = fulfilledTotal.Add(request.Amount)
		}
	}

	return CashbackHistory{
		CustomerName:   query.CustomerName,
		Requests:       requests,
		Count:          len(requests),
		FulfilledTotal: fulfilledTotal,
	}
}
