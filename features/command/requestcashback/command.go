package requestcashback

import (
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	commandType = "RequestCashback"
)

// Command represents the intent to pay out part of a customer's cashback balance.
type Command struct {
	CustomerName core.CustomerNameString
	Amount       core.Money
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(customerName core.CustomerNameString, amount core.Money, occurredAt time.Time) Command {
	return Command{
		CustomerName: customerName,
		Amount:       amount,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
