package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	logMsgActionDispatched = "action dispatched"
	logMsgJournalingFailed = "failed to journal action"
	logMsgQueryCompleted   = "query completed"
	logMsgQueryFailed      = "journal query failed"
	logMsgMessageIDFailed  = "failed to generate message id"
	logAttrError           = "error"
	logAttrActionType      = "action_type"
	logAttrCustomer        = "customer"
	logAttrSequenceNumber  = "sequence_number"
	logAttrActionCount     = "action_count"
	logAttrDurationMS      = "duration_ms"
	defaultJournalCapacity = 64
)

// Store holds the aggregate state of one session and the journal of all dispatched actions.
type Store struct {
	state            core.State
	journal          StorableActions
	sessionID        uuid.UUID
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewStore creates a Store holding core.EmptyState() and an empty journal.
func NewStore(options ...Option) (*Store, error) {
	s := &Store{
		state:     core.EmptyState(),
		journal:   make(StorableActions, 0, defaultJournalCapacity),
		sessionID: uuid.New(),
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SessionID returns the identifier recorded in the metadata of every journaled action.
func (s *Store) SessionID() uuid.UUID {
	return s.sessionID
}

// GetState returns the current aggregate. Callers must not mutate it.
func (s *Store) GetState() core.State {
	return s.state
}

// Dispatch applies the action to the state and appends it to the journal.
//
// The four slices are computed from the state as it was at the start of the call and committed together.
// Business outcomes like an insufficient cashback balance are part of the resulting state, not errors.
// An error is returned only for a nil action or if the action can't be journaled, and the state is unchanged then.
// The context carries tracing only: a dispatch always runs to completion, even on a canceled context.
func (s *Store) Dispatch(ctx context.Context, action core.Action) error {
	if action == nil {
		return ErrNilAction
	}

	start := time.Now()
	tracer, ctx := s.startDispatchTracing(ctx, action)
	metrics := s.startDispatchMetrics(ctx, action)

	messageID, err := uuid.NewV7()
	if err != nil {
		s.logErrorContext(ctx, logMsgMessageIDFailed, err, logAttrActionType, action.ActionType())
		metrics.recordError(errorTypeMessageID, time.Since(start))
		tracer.finishError(errorTypeMessageID, time.Since(start))

		return errors.Join(ErrMappingToStorableActionFailed, err)
	}

	sequenceNumber := uint(len(s.journal)) + 1

	storableAction, err := StorableActionFrom(sequenceNumber, action, BuildActionMetadata(messageID, s.sessionID))
	if err != nil {
		s.logErrorContext(ctx, logMsgJournalingFailed, err, logAttrActionType, action.ActionType())
		metrics.recordError(errorTypeJournaling, time.Since(start))
		tracer.finishError(errorTypeJournaling, time.Since(start))

		return err
	}

	snapshot := s.state
	s.state = Reduce(snapshot, action)
	s.journal = append(s.journal, storableAction)

	duration := time.Since(start)
	s.logDebugContext(
		ctx,
		logMsgActionDispatched,
		logAttrActionType, action.ActionType(),
		logAttrCustomer, action.ForCustomer(),
		logAttrSequenceNumber, sequenceNumber,
		logAttrDurationMS, toMilliseconds(duration),
	)
	metrics.recordSuccess(s.state.Cash, len(s.journal), duration)
	tracer.finishSuccess(sequenceNumber, duration)

	return nil
}

// Query returns the journaled actions matching the filter, in dispatch order,
// together with the highest sequence number in the journal at the time of the query.
func (s *Store) Query(ctx context.Context, filter Filter) (StorableActions, MaxSequenceNumberUint, error) {
	start := time.Now()
	tracer, ctx := s.startQueryTracing(ctx)
	metrics := s.startQueryMetrics(ctx)

	var empty StorableActions

	if err := ctx.Err(); err != nil {
		metrics.recordError(errorTypeCanceled, time.Since(start))
		tracer.finishError(errorTypeCanceled, time.Since(start))

		return empty, 0, err
	}

	matching := make(StorableActions, 0)

	for _, storableAction := range s.journal {
		matches, err := filter.Matches(storableAction)
		if err != nil {
			s.logErrorContext(ctx, logMsgQueryFailed, err, logAttrSequenceNumber, storableAction.SequenceNumber)
			metrics.recordError(errorTypeFilter, time.Since(start))
			tracer.finishError(errorTypeFilter, time.Since(start))

			return empty, 0, err
		}

		if matches {
			matching = append(matching, storableAction)
		}
	}

	maxSequenceNumber := MaxSequenceNumberUint(0)
	if len(s.journal) > 0 {
		maxSequenceNumber = s.journal[len(s.journal)-1].SequenceNumber
	}

	duration := time.Since(start)
	s.logInfoContext(ctx, logMsgQueryCompleted, logAttrActionCount, len(matching), logAttrDurationMS, toMilliseconds(duration))
	metrics.recordSuccess(len(matching), duration)
	tracer.finishQuerySuccess(len(matching), maxSequenceNumber, duration)

	return matching, maxSequenceNumber, nil
}

// Actions returns the journaled actions matching the filter, decoded back to core actions.
func (s *Store) Actions(ctx context.Context, filter Filter) (core.Actions, error) {
	storableActions, _, err := s.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ActionsFrom(storableActions)
}
