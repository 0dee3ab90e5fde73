// Package createcontract implements the Create Contract use case.
//
// A customer signs a service contract and pays the fee up front. The contract starts at the time of the
// command, and the fee goes straight into the cash register. Nothing is validated: a customer may hold
// several contracts, and any fee is accepted.
package createcontract
