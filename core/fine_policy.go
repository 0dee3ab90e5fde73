package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultFineThresholdMonths = 3
	defaultFineAmount          = 100
)

// MonthsBetween returns the number of calendar months from start to end.
// Only year and month are compared, so Jan 31 to Feb 1 counts as one month.
// Both are read in the calendar of start's location.
func MonthsBetween(start, end time.Time) int {
	end = end.In(start.Location())

	return (end.Year()-start.Year())*12 + (int(end.Month()) - int(start.Month()))
}

// FinePolicy decides the fine for canceling a contract early.
type FinePolicy struct {
	ThresholdMonths int
	Amount          Money
}

// DefaultFinePolicy charges 100 for contracts canceled within less than 3 months.
func DefaultFinePolicy() FinePolicy {
	return FinePolicy{
		ThresholdMonths: defaultFineThresholdMonths,
		Amount:          decimal.NewFromInt(defaultFineAmount),
	}
}

// FineFor returns the fine for canceling a contract that started at contractStart, at time now.
func (p FinePolicy) FineFor(contractStart, now time.Time) Money {
	if MonthsBetween(contractStart, now) < p.ThresholdMonths {
		return p.Amount
	}

	return decimal.Zero
}
