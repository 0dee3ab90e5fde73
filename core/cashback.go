package core

import (
	"github.com/shopspring/decimal"
)

// RequestStatus is the outcome of a cashback request.
type RequestStatus string

const (
	// RequestFulfilled means the balance covered the requested amount.
	RequestFulfilled RequestStatus = "FULFILLED"

	// RequestNotFulfilled means the balance was too low, nothing was debited.
	RequestNotFulfilled RequestStatus = "NOT_FULFILLED"
)

// CashbackBalances maps customer names to their cashback balance.
type CashbackBalances map[CustomerNameString]Money

// BalanceOf returns the balance of the customer, or zero if the customer has none.
func (b CashbackBalances) BalanceOf(customerName CustomerNameString) Money {
	if balance, ok := b[customerName]; ok {
		return balance
	}

	return decimal.Zero
}

// Covers reports whether the customer's balance is at least the given amount.
func (b CashbackBalances) Covers(customerName CustomerNameString, amount Money) bool {
	return b.BalanceOf(customerName).GreaterThanOrEqual(amount)
}

// CashbackRequest is one recorded cashback request.
type CashbackRequest struct {
	Amount Money
	Status RequestStatus
}

// CashbackRequests is a chronological sequence of cashback requests.
type CashbackRequests = []CashbackRequest

// CashbackHistory maps customer names to their chronological cashback requests.
type CashbackHistory map[CustomerNameString]CashbackRequests

// RequestsOf returns the requests of the customer, or nil if there are none.
func (h CashbackHistory) RequestsOf(customerName CustomerNameString) CashbackRequests {
	return h[customerName]
}
