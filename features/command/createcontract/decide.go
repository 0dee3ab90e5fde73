package createcontract

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Decide builds the action for signing a contract.
//
// Business Rules:
//
//	GIVEN: A customer name and a fee
//	WHEN: CreateContract command is received
//	THEN: CREATE_CONTRACT is dispatched with the command time as start date
func Decide(command Command) core.DecisionResult {
	return core.SuccessDecision(core.BuildCreateContract(command.OccurredAt, command.CustomerName, command.Fee))
}
