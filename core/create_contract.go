package core

import (
	"time"
)

// CreateContractActionType is the action type identifier.
const CreateContractActionType = "CREATE_CONTRACT"

// CreateContract represents a new service contract signed by a customer.
type CreateContract struct {
	Date         OccurredAtTS
	CustomerName CustomerNameString
	Fee          Money
}

// BuildCreateContract creates a new CreateContract action.
func BuildCreateContract(
	date time.Time,
	customerName CustomerNameString,
	fee Money,
) CreateContract {

	return CreateContract{
		Date:         ToOccurredAt(date),
		CustomerName: customerName,
		Fee:          fee,
	}
}

// ActionType returns the action type identifier.
func (a CreateContract) ActionType() ActionTypeString {
	return CreateContractActionType
}

// HasOccurredAt returns when this action occurred, which is the contract start date.
func (a CreateContract) HasOccurredAt() time.Time {
	return a.Date
}

// ForCustomer returns the name of the contracting customer.
func (a CreateContract) ForCustomer() CustomerNameString {
	return a.CustomerName
}
