package entity

import (
	"time"

	"github.com/google/uuid"
)

// CallOutcome is the normalized classification of a call result, distinct
// from the free-text disposition code the agent records.
type CallOutcome string

const (
	OutcomeConnected CallOutcome = "connected"
	OutcomeVoicemail CallOutcome = "voicemail"
	OutcomeNoAnswer  CallOutcome = "no-answer"
	OutcomeBusy      CallOutcome = "busy"
	OutcomeFailed    CallOutcome = "failed"
)

// Valid reports whether the outcome is one of the known classifications.
func (o CallOutcome) Valid() bool {
	switch o {
	case OutcomeConnected, OutcomeVoicemail, OutcomeNoAnswer, OutcomeBusy, OutcomeFailed:
		return true
	}
	return false
}

// CallHistoryEntry is an append-only record of a single logged call.
// Entries are never updated after creation.
type CallHistoryEntry struct {
	ID              uuid.UUID   `json:"id"`
	ContactID       uuid.UUID   `json:"contact_id"`
	Timestamp       time.Time   `json:"timestamp"`
	DurationSeconds int         `json:"duration_seconds"`
	Disposition     string      `json:"disposition"`
	Notes           string      `json:"notes"`
	Outcome         CallOutcome `json:"outcome"`
}
