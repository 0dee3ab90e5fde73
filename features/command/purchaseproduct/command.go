package purchaseproduct

import (
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	commandType = "PurchaseProduct"
)

// Command represents the intent to sell a product to a buyer.
type Command struct {
	BuyerName   core.CustomerNameString
	ProductName core.ProductNameString
	Amount      core.Money
	OccurredAt  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	buyerName core.CustomerNameString,
	productName core.ProductNameString,
	amount core.Money,
	occurredAt time.Time,
) Command {

	return Command{
		BuyerName:   buyerName,
		ProductName: productName,
		Amount:      amount,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
