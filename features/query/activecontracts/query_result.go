package activecontracts

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// ActiveContracts is the list of contracts currently held by customers.
type ActiveContracts struct {
	Contracts core.Contracts
	Count     int
	FeesTotal core.Money
}
