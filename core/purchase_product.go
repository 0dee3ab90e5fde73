package core

import (
	"time"
)

// PurchaseProductActionType is the action type identifier.
const PurchaseProductActionType = "PURCHASE_PRODUCT"

// PurchaseProduct represents the sale of a product to a buyer.
type PurchaseProduct struct {
	BuyerName   CustomerNameString
	ProductName ProductNameString
	Amount      Money
	OccurredAt  OccurredAtTS
}

// BuildPurchaseProduct creates a new PurchaseProduct action.
func BuildPurchaseProduct(
	buyerName CustomerNameString,
	productName ProductNameString,
	amount Money,
	occurredAt time.Time,
) PurchaseProduct {

	return PurchaseProduct{
		BuyerName:   buyerName,
		ProductName: productName,
		Amount:      amount,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// ActionType returns the action type identifier.
func (a PurchaseProduct) ActionType() ActionTypeString {
	return PurchaseProductActionType
}

// HasOccurredAt returns when this action occurred.
func (a PurchaseProduct) HasOccurredAt() time.Time {
	return a.OccurredAt
}

// ForCustomer returns the name of the buyer.
func (a PurchaseProduct) ForCustomer() CustomerNameString {
	return a.BuyerName
}

// RegisterShare returns the part of the sale amount kept by the cash register.
func (a PurchaseProduct) RegisterShare() Money {
	return a.Amount.Mul(RegisterRate)
}

// CashbackShare returns the part of the sale amount credited to the buyer as cashback.
func (a PurchaseProduct) CashbackShare() Money {
	return a.Amount.Mul(CashbackRate)
}
