package shell

import "errors"

var (
	// ErrBusinessRuleViolated is joined with every error a Decide function returns,
	// so the shell can tell rejected commands from technical failures.
	ErrBusinessRuleViolated = errors.New("business rule violated")
)

// IsBusinessRuleViolation checks if an error stems from a rejected decision.
func IsBusinessRuleViolation(err error) bool {
	return errors.Is(err, ErrBusinessRuleViolated)
}
