package cancelcontract

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// CommandHandler runs the Read -> Decide -> Dispatch workflow for contract cancellation.
type CommandHandler struct {
	store      shell.DecidesOnState
	finePolicy core.FinePolicy
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithFinePolicy replaces the default fine policy.
func WithFinePolicy(policy core.FinePolicy) Option {
	return func(h *CommandHandler) {
		h.finePolicy = policy
	}
}

// NewCommandHandler creates a new CommandHandler that uses core.DefaultFinePolicy unless configured otherwise.
func NewCommandHandler(store shell.DecidesOnState, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store:      store,
		finePolicy: core.DefaultFinePolicy(),
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle cancels the customer's contracts.
// A customer without contracts yields an error that matches both ErrContractNotFound and
// shell.ErrBusinessRuleViolated.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	result := Decide(h.store.GetState(), command, h.finePolicy)

	if err := result.HasError(); err != nil {
		return shell.NewRejectedResult(), errors.Join(shell.ErrBusinessRuleViolated, err)
	}

	if err := h.store.Dispatch(ctx, result.Action); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewDispatchedResult(), nil
}
