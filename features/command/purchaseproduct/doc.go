// Package purchaseproduct implements the Purchase Product use case.
// The cash register keeps 90% of the sale amount and the buyer earns the other 10% as cashback.
package purchaseproduct
