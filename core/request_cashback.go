package core

import (
	"time"
)

// RequestCashbackActionType is the action type identifier.
const RequestCashbackActionType = "REQUEST_CASHBACK"

// RequestCashback represents a customer asking to redeem part of their cashback balance.
type RequestCashback struct {
	CustomerName CustomerNameString
	Amount       Money
	OccurredAt   OccurredAtTS
}

// BuildRequestCashback creates a new RequestCashback action.
func BuildRequestCashback(
	customerName CustomerNameString,
	amount Money,
	occurredAt time.Time,
) RequestCashback {

	return RequestCashback{
		CustomerName: customerName,
		Amount:       amount,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// ActionType returns the action type identifier.
func (a RequestCashback) ActionType() ActionTypeString {
	return RequestCashbackActionType
}

// HasOccurredAt returns when this action occurred.
func (a RequestCashback) HasOccurredAt() time.Time {
	return a.OccurredAt
}

// ForCustomer returns the name of the requesting customer.
func (a RequestCashback) ForCustomer() CustomerNameString {
	return a.CustomerName
}
