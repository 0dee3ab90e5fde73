package core

import (
	"time"
)

// CancelContractActionType is the action type identifier.
const CancelContractActionType = "CANCEL_CONTRACT"

// CancelContract represents the cancellation of all contracts of a customer.
// The Fine is computed by the caller (see FinePolicy) before the action is built.
type CancelContract struct {
	CustomerName CustomerNameString
	Fine         Money
	OccurredAt   OccurredAtTS
}

// BuildCancelContract creates a new CancelContract action.
func BuildCancelContract(
	customerName CustomerNameString,
	fine Money,
	occurredAt time.Time,
) CancelContract {

	return CancelContract{
		CustomerName: customerName,
		Fine:         fine,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// ActionType returns the action type identifier.
func (a CancelContract) ActionType() ActionTypeString {
	return CancelContractActionType
}

// HasOccurredAt returns when this action occurred.
func (a CancelContract) HasOccurredAt() time.Time {
	return a.OccurredAt
}

// ForCustomer returns the name of the customer whose contracts are canceled.
func (a CancelContract) ForCustomer() CustomerNameString {
	return a.CustomerName
}
