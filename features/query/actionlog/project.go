package actionlog

import (
	"fmt"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

// Project turns journaled actions into log entries. It fails if an action cannot be decoded.
func Project(storableActions ledger.StorableActions, _ Query, maxSequence uint) (ActionLog, error) {
	entries := make([]Entry, 0, len(storableActions))

	for _, storableAction := range storableActions {
		action, err := ledger.ActionFrom(storableAction)
		if err != nil {
			return ActionLog{}, err
		}

		entries = append(entries, Entry{
			SequenceNumber: storableAction.SequenceNumber,
			ActionType:     action.ActionType(),
			OccurredAt:     action.HasOccurredAt(),
			CustomerName:   action.ForCustomer(),
			Description:    describe(action),
		})
	}

	return ActionLog{
		Entries:        entries,
		Count:          len(entries),
		SequenceNumber: maxSequence,
	}, nil
}

// BuildActionFilter creates the journal filter for the query.
func BuildActionFilter(query Query) ledger.Filter {
	if query.CustomerName == "" {
		return ledger.BuildActionFilter().MatchingAnyAction()
	}

	byName, byBuyer := ledger.CustomerPredicates(query.CustomerName)

	return ledger.BuildActionFilter().
		Matching().
		AnyPredicateOf(byName, byBuyer).
		Finalize()
}

func describe(action core.Action) string {
	switch a := action.(type) {
	case core.CreateContract:
		return fmt.Sprintf("%s signed a contract, fee %s", a.CustomerName, a.Fee.String())
	case core.CancelContract:
		return fmt.Sprintf("%s canceled their contracts, fine %s", a.CustomerName, a.Fine.String())
	case core.RequestCashback:
		return fmt.Sprintf("%s requested %s cashback", a.CustomerName, a.Amount.String())
	case core.PurchaseProduct:
		return fmt.Sprintf("%s bought %q for %s", a.BuyerName, a.ProductName, a.Amount.String())
	default:
		return action.ActionType()
	}
}
