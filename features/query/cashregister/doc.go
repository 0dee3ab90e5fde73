// Package cashregister provides the current amount of money in the cash register.
package cashregister
