// Package cancelcontract implements the Cancel Contract use case.
//
// The customer's first contract decides the fine: canceling within the threshold of the fine policy
// (3 calendar months by default) costs a fixed amount, later cancellations are free. Dispatching the
// cancellation removes every contract of the customer.
package cancelcontract
