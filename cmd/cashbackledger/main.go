// Command cashbackledger runs an interactive cashback ledger session on the terminal.
//
// The ledger tracks service contracts, the cash register, customers' cashback balances, and the history
// of their cashback requests. All state lives in memory and is gone when the session ends.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
