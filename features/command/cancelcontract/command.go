package cancelcontract

import (
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	commandType = "CancelContract"
)

// Command represents the intent to cancel the contracts of a customer.
type Command struct {
	CustomerName core.CustomerNameString
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(customerName core.CustomerNameString, occurredAt time.Time) Command {
	return Command{
		CustomerName: customerName,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
