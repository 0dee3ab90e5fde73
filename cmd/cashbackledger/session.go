package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/cancelcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/createcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/purchaseproduct"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/requestcashback"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/actionlog"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/activecontracts"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashbackbalance"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashbackhistory"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashregister"
)

const menu = `
1. Create contract
2. Cancel contract
3. Cashback balance
4. Request cashback
5. Cash register
6. Purchase product
7. Cashback history
8. List contracts
9. Action log
0. Exit
`

const dateLayout = "2006-01-02"

var errEndOfInput = errors.New("end of input")

// session runs the menu loop of one ledger session.
// Prompts and the menu are only written when the input is an interactive terminal.
type session struct {
	app         *app
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	now         func() time.Time
}

func newSession(a *app, in io.Reader, out io.Writer, interactive bool, now func() time.Time) *session {
	return &session{
		app:         a,
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		now:         now,
	}
}

// run reads menu options until "0" or the end of the input.
// Business outcomes are printed; only technical failures end the session with an error.
func (s *session) run(ctx context.Context) error {
	for {
		if s.interactive {
			s.println(menu)
		}

		option, err := s.readLine("Select an option: ")
		if errors.Is(err, errEndOfInput) {
			s.println("Exiting...")
			return nil
		}
		if err != nil {
			return err
		}

		if option == "0" {
			s.println("Exiting...")
			return nil
		}

		err = s.handle(ctx, option)
		if errors.Is(err, errEndOfInput) {
			s.println("Exiting...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) handle(ctx context.Context, option string) error {
	switch option {
	case "1":
		return s.createContract(ctx)
	case "2":
		return s.cancelContract(ctx)
	case "3":
		return s.showCashbackBalance(ctx)
	case "4":
		return s.requestCashback(ctx)
	case "5":
		return s.showCashRegister(ctx)
	case "6":
		return s.purchaseProduct(ctx)
	case "7":
		return s.showCashbackHistory(ctx)
	case "8":
		return s.showActiveContracts(ctx)
	case "9":
		return s.showActionLog(ctx)
	default:
		s.println("invalid option")
		return nil
	}
}

func (s *session) createContract(ctx context.Context) error {
	name, err := s.readLine("Customer name: ")
	if err != nil {
		return err
	}

	fee, err := s.readMoney("Contract fee: ")
	if err != nil {
		return err
	}

	if _, err = s.app.createContract.Handle(ctx, createcontract.BuildCommand(name, fee, s.now())); err != nil {
		return err
	}

	s.println("Contract created.")

	return nil
}

func (s *session) cancelContract(ctx context.Context) error {
	name, err := s.readLine("Customer name: ")
	if err != nil {
		return err
	}

	_, err = s.app.cancelContract.Handle(ctx, cancelcontract.BuildCommand(name, s.now()))
	if errors.Is(err, cancelcontract.ErrContractNotFound) {
		s.println("Contract not found.")
		return nil
	}
	if err != nil {
		return err
	}

	s.println("Contract canceled.")

	return nil
}

func (s *session) showCashbackBalance(ctx context.Context) error {
	name, err := s.readLine("Customer name: ")
	if err != nil {
		return err
	}

	result, err := s.app.cashbackBalance.Handle(ctx, cashbackbalance.BuildQuery(name))
	if err != nil {
		return err
	}

	s.printf("Cashback balance of %s: %s\n", result.CustomerName, result.Balance.String())

	return nil
}

func (s *session) requestCashback(ctx context.Context) error {
	name, err := s.readLine("Customer name: ")
	if err != nil {
		return err
	}

	amount, err := s.readMoney("Cashback amount: ")
	if err != nil {
		return err
	}

	result, err := s.app.requestCashback.Handle(ctx, requestcashback.BuildCommand(name, amount, s.now()))
	if err != nil {
		return err
	}

	s.printf("Cashback request recorded: %s\n", result.BusinessOutcome)

	return nil
}

func (s *session) showCashRegister(ctx context.Context) error {
	result, err := s.app.cashRegister.Handle(ctx, cashregister.BuildQuery())
	if err != nil {
		return err
	}

	s.printf("Cash register balance: %s\n", result.Cash.String())

	return nil
}

func (s *session) purchaseProduct(ctx context.Context) error {
	buyer, err := s.readLine("Buyer name: ")
	if err != nil {
		return err
	}

	product, err := s.readLine("Product name: ")
	if err != nil {
		return err
	}

	amount, err := s.readMoney("Product price: ")
	if err != nil {
		return err
	}

	if _, err = s.app.purchaseProduct.Handle(ctx, purchaseproduct.BuildCommand(buyer, product, amount, s.now())); err != nil {
		return err
	}

	s.println("Product purchased.")

	return nil
}

func (s *session) showCashbackHistory(ctx context.Context) error {
	name, err := s.readLine("Customer name: ")
	if err != nil {
		return err
	}

	result, err := s.app.cashbackHistory.Handle(ctx, cashbackhistory.BuildQuery(name))
	if err != nil {
		return err
	}

	if result.Count == 0 {
		s.printf("No cashback requests for %s.\n", name)
		return nil
	}

	for i, request := range result.Requests {
		s.printf("%d. %s %s\n", i+1, request.Amount.String(), request.Status)
	}

	return nil
}

func (s *session) showActiveContracts(ctx context.Context) error {
	result, err := s.app.activeContracts.Handle(ctx, activecontracts.BuildQuery())
	if err != nil {
		return err
	}

	if result.Count == 0 {
		s.println("No active contracts.")
		return nil
	}

	for _, contract := range result.Contracts {
		s.printf("%s since %s, fee %s\n", contract.CustomerName, contract.StartDate.Format(dateLayout), contract.Fee.String())
	}

	return nil
}

func (s *session) showActionLog(ctx context.Context) error {
	name, err := s.readLine("Customer name (empty for all): ")
	if err != nil {
		return err
	}

	query := actionlog.BuildQuery()
	if name != "" {
		query = actionlog.BuildQueryForCustomer(name)
	}

	result, err := s.app.actionLog.Handle(ctx, query)
	if err != nil {
		return err
	}

	if result.Count == 0 {
		s.println("No actions.")
		return nil
	}

	for _, entry := range result.Entries {
		s.printf("#%d %s %s\n", entry.SequenceNumber, entry.ActionType, entry.Description)
	}

	return nil
}

// readLine returns the next trimmed input line, or errEndOfInput when the input is exhausted.
func (s *session) readLine(prompt string) (string, error) {
	if s.interactive {
		s.printf("%s", prompt)
	}

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", errEndOfInput
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// readMoney asks until the input is a decimal number.
func (s *session) readMoney(prompt string) (core.Money, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return core.Money{}, err
		}

		amount, err := core.MoneyFromString(line)
		if err == nil {
			return amount, nil
		}

		s.printf("%q is not a number, try again\n", line)
	}
}

func (s *session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
