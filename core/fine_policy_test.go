package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

func Test_MonthsBetween(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "same day",
			start:    date(2024, time.March, 10),
			end:      date(2024, time.March, 10),
			expected: 0,
		},
		{
			name:     "end of month to start of next month counts as one",
			start:    date(2024, time.January, 31),
			end:      date(2024, time.February, 1),
			expected: 1,
		},
		{
			name:     "day of month is ignored",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.March, 31),
			expected: 2,
		},
		{
			name:     "across a year boundary",
			start:    date(2023, time.November, 15),
			end:      date(2024, time.February, 15),
			expected: 3,
		},
		{
			name:     "local calendar of a zone west of UTC",
			start:    time.Date(2024, time.March, 31, 21, 30, 0, 0, utcMinus3),
			end:      time.Date(2024, time.June, 1, 10, 0, 0, 0, utcMinus3),
			expected: 3,
		},
		{
			name:     "end is read in the calendar of start",
			start:    time.Date(2024, time.March, 31, 21, 30, 0, 0, utcMinus3),
			end:      time.Date(2024, time.June, 1, 0, 30, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "end before start is negative",
			start:    date(2024, time.May, 1),
			end:      date(2024, time.February, 1),
			expected: -3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			months := core.MonthsBetween(tc.start, tc.end)

			// assert
			assert.Equal(t, tc.expected, months, "Months between should match")
		})
	}
}

func Test_FinePolicy_FineFor(t *testing.T) {
	policy := core.DefaultFinePolicy()
	start := date(2024, time.January, 20)

	testCases := []struct {
		name         string
		now          time.Time
		expectedFine string
	}{
		{name: "canceled in the same month", now: date(2024, time.January, 25), expectedFine: "100"},
		{name: "canceled after one month", now: date(2024, time.February, 19), expectedFine: "100"},
		{name: "canceled after two calendar months", now: date(2024, time.March, 1), expectedFine: "100"},
		{name: "canceled after three calendar months", now: date(2024, time.April, 1), expectedFine: "0"},
		{name: "canceled after a year", now: date(2025, time.January, 20), expectedFine: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			fine := policy.FineFor(start, tc.now)

			// assert
			assertMoney(t, tc.expectedFine, fine)
		})
	}
}

func Test_FinePolicy_CustomThresholdAndAmount(t *testing.T) {
	// arrange
	policy := core.FinePolicy{ThresholdMonths: 12, Amount: core.MoneyFromInt(250)}
	start := date(2024, time.January, 1)

	// act
	early := policy.FineFor(start, date(2024, time.December, 1))
	late := policy.FineFor(start, date(2025, time.January, 1))

	// assert
	assertMoney(t, "250", early)
	assertMoney(t, "0", late)
}

func Test_ToOccurredAt_KeepsLocation(t *testing.T) {
	// arrange
	local := time.Date(2024, time.March, 31, 21, 30, 0, 1500, utcMinus3)

	// act
	occurredAt := core.ToOccurredAt(local)

	// assert
	assert.Equal(t, utcMinus3, occurredAt.Location())
	assert.Equal(t, time.March, occurredAt.Month())
	assert.Equal(t, 31, occurredAt.Day())
	assert.Equal(t, 1000, occurredAt.Nanosecond())
}

var utcMinus3 = time.FixedZone("UTC-3", -3*60*60)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func assertMoney(t *testing.T, expected string, actual core.Money) {
	t.Helper()

	expectedMoney, err := core.MoneyFromString(expected)
	assert.NoError(t, err, "Expected money should parse")
	assert.True(t, expectedMoney.Equal(actual), "Expected %s, got %s", expected, actual.String())
}
