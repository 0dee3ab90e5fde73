package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// CustomerNameString represents a customer name, which is also the lookup key for contracts and cashback.
type CustomerNameString = string

// ProductNameString represents a product name.
type ProductNameString = string

// ActionTypeString represents an action type identifier.
type ActionTypeString = string

// OccurredAtTS represents when an action occurred.
type OccurredAtTS = time.Time

// Money represents a monetary amount.
type Money = decimal.Decimal

// CashbackRate is the share of each sale credited to the buyer as cashback.
var CashbackRate = decimal.RequireFromString("0.1")

// RegisterRate is the share of each sale kept by the cash register.
var RegisterRate = decimal.NewFromInt(1).Sub(CashbackRate)

// ToOccurredAt truncates a time to microsecond precision. The location is kept, so calendar
// arithmetic such as MonthsBetween sees the operator's local dates.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.Truncate(time.Microsecond)
}

// MoneyFromInt builds a Money value from an integer amount.
func MoneyFromInt(amount int64) Money {
	return decimal.NewFromInt(amount)
}

// MoneyFromString parses a Money value, e.g. "12.50".
func MoneyFromString(amount string) (Money, error) {
	return decimal.NewFromString(amount)
}
