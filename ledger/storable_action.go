package ledger

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// StorableActions is an alias type for a slice of StorableAction.
type StorableActions = []StorableAction

// StorableAction is a DTO (data transfer object) used by the journal to record dispatched actions.
//
// It is built on scalars, so consumers of the journal don't need to know the core action types.
//
// While its properties are exported, it should only be constructed with the supplied factory method BuildStorableAction.
type StorableAction struct {
	SequenceNumber uint
	ActionType     string
	OccurredAt     time.Time
	PayloadJSON    []byte
	MetadataJSON   []byte
}

// BuildStorableAction is a factory method for StorableAction.
//
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildStorableAction(
	sequenceNumber uint,
	actionType string,
	occurredAt time.Time,
	payloadJSON []byte,
	metadataJSON []byte,
) (StorableAction, error) {

	if !jsoniter.Valid(payloadJSON) {
		return StorableAction{}, ErrInvalidPayloadJSON
	}

	if !jsoniter.Valid(metadataJSON) {
		return StorableAction{}, ErrInvalidMetadataJSON
	}

	return StorableAction{
		SequenceNumber: sequenceNumber,
		ActionType:     actionType,
		OccurredAt:     occurredAt,
		PayloadJSON:    payloadJSON,
		MetadataJSON:   metadataJSON,
	}, nil
}

// MessageID represents a unique message identifier.
type MessageID = string

// SessionID represents the identifier of the session that dispatched an action.
type SessionID = string

// ActionMetadata contains action tracking information.
type ActionMetadata struct {
	MessageID MessageID
	SessionID SessionID
}

// BuildActionMetadata creates ActionMetadata from UUID values.
func BuildActionMetadata(messageID uuid.UUID, sessionID uuid.UUID) ActionMetadata {
	return ActionMetadata{
		MessageID: messageID.String(),
		SessionID: sessionID.String(),
	}
}

// ActionMetadataFrom extracts ActionMetadata from a StorableAction.
func ActionMetadataFrom(storableAction StorableAction) (ActionMetadata, error) {
	metadata := new(ActionMetadata)

	err := jsonAPI.Unmarshal(storableAction.MetadataJSON, metadata)
	if err != nil {
		return ActionMetadata{}, err
	}

	return *metadata, nil
}
