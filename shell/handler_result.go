package shell

const (
	// OutcomeDispatched is the business outcome of a command that dispatched its action.
	OutcomeDispatched = "dispatched"

	// OutcomeRejected is the business outcome of a command that failed a business rule.
	OutcomeRejected = "rejected"
)

// HandlerResult represents the outcome of a command handler execution.
// It carries the business outcome without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// BusinessOutcome classifies the result, e.g. "dispatched", or "FULFILLED" for a cashback request.
	BusinessOutcome string
}

// NewDispatchedResult creates a HandlerResult for a command that dispatched its action.
func NewDispatchedResult() HandlerResult {
	return HandlerResult{BusinessOutcome: OutcomeDispatched}
}

// NewOutcomeResult creates a HandlerResult with a domain specific business outcome.
func NewOutcomeResult(outcome string) HandlerResult {
	return HandlerResult{BusinessOutcome: outcome}
}

// NewRejectedResult creates a HandlerResult for a command that was rejected by a business rule.
func NewRejectedResult() HandlerResult {
	return HandlerResult{BusinessOutcome: OutcomeRejected}
}

// Rejected reports whether the command was rejected by a business rule.
func (r HandlerResult) Rejected() bool {
	return r.BusinessOutcome == OutcomeRejected
}
