package ledger

import (
	"errors"
)

var ErrNilAction = errors.New("nil action supplied")
var ErrNilSessionID = errors.New("nil session id supplied")
var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")
var ErrUnknownActionType = errors.New("unknown action type")

// ErrMappingToStorableActionFailed is returned when an action can't be serialized for the journal.
var ErrMappingToStorableActionFailed = errors.New("mapping to storable action failed")

// ErrMappingToActionFailed is returned when a journaled action can't be deserialized.
var ErrMappingToActionFailed = errors.New("mapping to action failed")

// MaxSequenceNumberUint is a type alias for uint, representing the highest sequence number in the journal.
type MaxSequenceNumberUint = uint
