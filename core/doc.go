// Package core contains the actions and state types for the example:
// A small subscription and cashback business.
//
// Actions represent meaningful business occurrences like CreateContract and PurchaseProduct.
// They are folded by the reducers into four independent slices of the aggregate State:
// contracts, the cash register, cashback balances, and the cashback request history.
//
// All monetary values are decimal.Decimal, so the 90/10 split of a sale is exact.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
