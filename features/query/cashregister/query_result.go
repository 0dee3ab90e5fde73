package cashregister

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// CashRegister is the money collected from fees, fines, and the register share of sales.
type CashRegister struct {
	Cash core.Money
}
