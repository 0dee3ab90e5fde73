package actionlog

import (
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Entry is one journaled action.
type Entry struct {
	SequenceNumber uint
	ActionType     core.ActionTypeString
	OccurredAt     time.Time
	CustomerName   core.CustomerNameString
	Description    string
}

// ActionLog is the selected part of the journal in dispatch order.
type ActionLog struct {
	Entries        []Entry
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last journaled action when the log was read.
func (l ActionLog) GetSequenceNumber() uint {
	return l.SequenceNumber
}
