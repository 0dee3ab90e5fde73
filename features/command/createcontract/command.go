package createcontract

import (
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	commandType = "CreateContract"
)

// Command represents the intent to sign a new contract for a customer.
type Command struct {
	CustomerName core.CustomerNameString
	Fee          core.Money
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(customerName core.CustomerNameString, fee core.Money, occurredAt time.Time) Command {
	return Command{
		CustomerName: customerName,
		Fee:          fee,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
