package core

import (
	"time"
)

// Actions is a slice of Action instances.
type Actions = []Action

// Action represents a business occurrence that is dispatched to the ledger and folded into the state.
type Action interface {
	// ActionType returns the string identifier for this action type.
	ActionType() ActionTypeString

	// HasOccurredAt returns when this action occurred.
	HasOccurredAt() time.Time

	// ForCustomer returns the name of the customer this action concerns.
	ForCustomer() CustomerNameString
}

// AllActionTypes returns the identifiers of all known action types.
func AllActionTypes() []ActionTypeString {
	return []ActionTypeString{
		CreateContractActionType,
		CancelContractActionType,
		RequestCashbackActionType,
		PurchaseProductActionType,
	}
}
