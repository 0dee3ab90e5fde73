// Package cashbackbalance provides the lookup of a single customer's cashback balance.
// Customers who never bought anything have a balance of zero.
package cashbackbalance
