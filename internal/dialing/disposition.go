package dialing

import (
	"time"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

// Transition describes what a disposition code does to a contact's status.
type Transition int

const (
	// NoChange leaves the contact in its current status.
	NoChange Transition = iota
	// ToContacted moves pending contacts to contacted.
	ToContacted
	// ToDNC moves the contact to the terminal do-not-call state.
	ToDNC
)

// Rule pairs the status transition a code triggers with the outcome
// classification used when the caller does not supply one.
type Rule struct {
	Transition Transition
	Outcome    entity.CallOutcome
}

// DispositionRules is the authoritative mapping from disposition code to its
// effect. Codes absent from the table are valid input and cause no status
// change, so Apply is total over every (status, code) pair. No rule targets
// the completed status; it is reachable only by direct field assignment.
var DispositionRules = map[string]Rule{
	"connected":                {Transition: ToContacted, Outcome: entity.OutcomeConnected},
	"callback":                 {Transition: ToContacted, Outcome: entity.OutcomeConnected},
	"connected-not-interested": {Transition: NoChange, Outcome: entity.OutcomeConnected},
	"voicemail":                {Transition: NoChange, Outcome: entity.OutcomeVoicemail},
	"no-answer":                {Transition: NoChange, Outcome: entity.OutcomeNoAnswer},
	"busy":                     {Transition: NoChange, Outcome: entity.OutcomeBusy},
	"wrong-number":             {Transition: NoChange, Outcome: entity.OutcomeFailed},
	"do-not-call":              {Transition: ToDNC, Outcome: entity.OutcomeConnected},
}

// DefaultOutcome classifies a disposition code for aggregate statistics.
// Unrecognized codes count as failed attempts.
func DefaultOutcome(code string) entity.CallOutcome {
	if rule, ok := DispositionRules[code]; ok {
		return rule.Outcome
	}
	return entity.OutcomeFailed
}

// Apply returns the contact as it should look after logging a call with the
// given disposition code at the given time: call count incremented by one,
// last-called stamped, the code recorded last-write-wins, and the status
// advanced per the rule table. The dnc state is terminal and a contact
// already completed is never pulled back to contacted.
func Apply(contact entity.Contact, code string, now time.Time) entity.Contact {
	contact.CallCount++
	contact.LastCalled = &now
	contact.Disposition = &code

	rule, ok := DispositionRules[code]
	if !ok || contact.Status == entity.StatusDNC {
		return contact
	}

	switch rule.Transition {
	case ToDNC:
		contact.Status = entity.StatusDNC
	case ToContacted:
		if contact.Status == entity.StatusPending || contact.Status == entity.StatusContacted {
			contact.Status = entity.StatusContacted
		}
	}

	return contact
}
