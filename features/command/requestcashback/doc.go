// Package requestcashback implements the Request Cashback use case.
//
// Every request is recorded in the customer's cashback history. The request is fulfilled, and the balance
// debited, only if the balance covers the amount. An insufficient balance is a business outcome
// (NOT_FULFILLED), not an error.
package requestcashback
