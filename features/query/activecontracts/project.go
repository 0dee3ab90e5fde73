package activecontracts

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Project copies the contracts out of the state, keeping their creation order.
func Project(state core.State, _ Query) ActiveContracts {
	contracts := slices.Clone(state.Contracts)
	if contracts == nil {
		contracts = core.Contracts{}
	}

	feesTotal := decimal.Zero
	for _, contract := range contracts {
		feesTotal = feesTotal.Add(contract.Fee)
	}

	return ActiveContracts{
		Contracts: contracts,
		Count:     len(contracts),
		FeesTotal: feesTotal,
	}
}
