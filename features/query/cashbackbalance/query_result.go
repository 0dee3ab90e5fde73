package cashbackbalance

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// CashbackBalance is the balance of one customer.
type CashbackBalance struct {
	CustomerName core.CustomerNameString
	Balance      core.Money
}
