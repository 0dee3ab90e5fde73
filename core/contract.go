package core

// Contracts is the sequence of active contracts, in creation order.
type Contracts = []Contract

// Contract represents a customer's active subscription.
// Names are not unique: a customer may hold several contracts at once.
type Contract struct {
	CustomerName CustomerNameString
	StartDate    OccurredAtTS
	Fee          Money
}

// ContractFrom builds the Contract that a CreateContract action opens.
func ContractFrom(action CreateContract) Contract {
	return Contract{
		CustomerName: action.CustomerName,
		StartDate:    action.Date,
		Fee:          action.Fee,
	}
}
