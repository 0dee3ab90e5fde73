package ledger

import (
	"github.com/google/uuid"
)

// Option defines a functional option for configuring the Store.
type Option func(*Store) error

// WithSessionID sets the session identifier recorded in the metadata of every journaled action.
// Without this option, a random session id is generated.
func WithSessionID(sessionID uuid.UUID) Option {
	return func(s *Store) error {
		if sessionID == uuid.Nil {
			return ErrNilSessionID
		}

		s.sessionID = sessionID

		return nil
	}
}

// WithLogger sets the logger for the Store.
//
// Debug level: every dispatched action with its sequence number and timing
// Info level: journal queries
// Error level: actions that could not be journaled.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the context-aware logger for the Store.
// When both loggers are set, the contextual logger takes precedence.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
func WithTracing(collector TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}
