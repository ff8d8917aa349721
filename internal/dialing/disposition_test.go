package dialing

import (
	"testing"
	"time"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

func TestApply_IncrementsAndStamps(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	contact := entity.Contact{Status: entity.StatusPending, CallCount: 2}

	got := Apply(contact, "voicemail", now)

	if got.CallCount != 3 {
		t.Fatalf("expected call count 3, got %d", got.CallCount)
	}
	if got.LastCalled == nil || !got.LastCalled.Equal(now) {
		t.Fatalf("expected last called %v, got %v", now, got.LastCalled)
	}
	if got.Disposition == nil || *got.Disposition != "voicemail" {
		t.Fatalf("expected disposition recorded, got %v", got.Disposition)
	}
	if got.Status != entity.StatusPending {
		t.Fatalf("voicemail should not change status, got %s", got.Status)
	}
}

func TestApply_DoNotCallFromAnyState(t *testing.T) {
	now := time.Now()
	for _, status := range []entity.ContactStatus{entity.StatusPending, entity.StatusContacted, entity.StatusCompleted} {
		got := Apply(entity.Contact{Status: status, CallCount: 2}, "do-not-call", now)
		if got.Status != entity.StatusDNC {
			t.Fatalf("do-not-call from %s: expected dnc, got %s", status, got.Status)
		}
		if got.CallCount != 3 {
			t.Fatalf("expected call count 3, got %d", got.CallCount)
		}
		if got.Disposition == nil || *got.Disposition != "do-not-call" {
			t.Fatalf("expected disposition do-not-call, got %v", got.Disposition)
		}
	}
}

func TestApply_ConnectedCodesMoveToContacted(t *testing.T) {
	now := time.Now()
	for _, code := range []string{"connected", "callback"} {
		got := Apply(entity.Contact{Status: entity.StatusPending}, code, now)
		if got.Status != entity.StatusContacted {
			t.Fatalf("code %s: expected contacted, got %s", code, got.Status)
		}
	}
}

func TestApply_ContactedCodesDoNotDowngradeCompleted(t *testing.T) {
	got := Apply(entity.Contact{Status: entity.StatusCompleted}, "connected", time.Now())
	if got.Status != entity.StatusCompleted {
		t.Fatalf("expected completed to stick, got %s", got.Status)
	}
}

func TestApply_DNCIsTerminal(t *testing.T) {
	for code := range DispositionRules {
		got := Apply(entity.Contact{Status: entity.StatusDNC}, code, time.Now())
		if got.Status != entity.StatusDNC {
			t.Fatalf("code %s left dnc state: %s", code, got.Status)
		}
	}
}

func TestApply_UnknownCodeKeepsStatus(t *testing.T) {
	got := Apply(entity.Contact{Status: entity.StatusContacted, CallCount: 1}, "left-note-on-door", time.Now())
	if got.Status != entity.StatusContacted {
		t.Fatalf("unknown code changed status to %s", got.Status)
	}
	if got.CallCount != 2 {
		t.Fatalf("unknown code must still count the call, got %d", got.CallCount)
	}
}

func TestApply_NoRuleTargetsCompleted(t *testing.T) {
	for code, rule := range DispositionRules {
		got := Apply(entity.Contact{Status: entity.StatusPending}, code, time.Now())
		if got.Status == entity.StatusCompleted {
			t.Fatalf("code %s reached completed via dispositions", code)
		}
		if rule.Outcome == "" || !rule.Outcome.Valid() {
			t.Fatalf("code %s has no valid outcome classification", code)
		}
	}
}

func TestDefaultOutcome(t *testing.T) {
	cases := map[string]entity.CallOutcome{
		"connected":    entity.OutcomeConnected,
		"callback":     entity.OutcomeConnected,
		"voicemail":    entity.OutcomeVoicemail,
		"no-answer":    entity.OutcomeNoAnswer,
		"busy":         entity.OutcomeBusy,
		"wrong-number": entity.OutcomeFailed,
		"do-not-call":  entity.OutcomeConnected,
		"gibberish":    entity.OutcomeFailed,
	}
	for code, want := range cases {
		if got := DefaultOutcome(code); got != want {
			t.Fatalf("code %s: expected %s, got %s", code, want, got)
		}
	}
}
