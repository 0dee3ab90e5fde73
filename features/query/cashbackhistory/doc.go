// Package cashbackhistory provides the chronological cashback requests of a customer,
// each with the amount asked for and whether it was fulfilled.
package cashbackhistory
