package cancelcontract

import (
	"errors"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

var (
	// ErrContractNotFound is returned when the customer has no contract to cancel.
	ErrContractNotFound = errors.New("contract not found")
)

// Decide determines whether and with which fine the contracts of a customer are canceled.
// This is a pure function: it reads the state snapshot and returns the action to dispatch.
//
// Business Rules:
//
//	GIVEN: A customer with at least one contract
//	WHEN: CancelContract command is received
//	THEN: CANCEL_CONTRACT is dispatched, the fine is computed from the start date of the first contract
//	ERROR: "contract not found" if the customer has no contract, nothing is dispatched
func Decide(state core.State, command Command, policy core.FinePolicy) core.DecisionResult {
	contract, found := state.FindContract(command.CustomerName)
	if !found {
		return core.ErrorDecision(errors.Join(ErrContractNotFound, errors.New(command.CustomerName)))
	}

	fine := policy.FineFor(contract.StartDate, command.OccurredAt)

	return core.SuccessDecision(core.BuildCancelContract(command.CustomerName, fine, command.OccurredAt))
}
