package cashbackhistory

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// CashbackHistory is the list of requests of one customer, oldest first.
type CashbackHistory struct {
	CustomerName   core.CustomerNameString
	Requests       core.CashbackRequests
	Count          int
	FulfilledTotal core.Money
}
