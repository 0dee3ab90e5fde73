package core

// DecisionResult represents the outcome of a business decision in a Decide function.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// SuccessDecision(action) or ErrorDecision(err).
type DecisionResult struct {
	Outcome string // "success" or "error"
	Action  Action // nil for error decisions
	Err     error
}

const (
	successOutcome = "success"
	errorOutcome   = "error"
)

// SuccessDecision creates a DecisionResult with an action to dispatch.
func SuccessDecision(action Action) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Action:  action,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation.
// Nothing is dispatched for an error decision.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// HasActionToDispatch returns true if there is an action to dispatch.
func (r DecisionResult) HasActionToDispatch() bool {
	return r.Outcome == successOutcome && r.Action != nil
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
