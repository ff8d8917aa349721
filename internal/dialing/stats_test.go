package dialing

import (
	"testing"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, nil)

	if stats.Contacts.Total != 0 {
		t.Fatalf("expected zero contacts, got %d", stats.Contacts.Total)
	}
	if stats.Calls.Total != 0 || stats.Calls.ConnectionRate != 0 {
		t.Fatalf("expected zero calls and rate, got %+v", stats.Calls)
	}
}

func TestComputeStats_StatusCountsSumToTotal(t *testing.T) {
	contacts := []entity.Contact{
		{Status: entity.StatusPending},
		{Status: entity.StatusPending},
		{Status: entity.StatusContacted},
		{Status: entity.StatusCompleted},
		{Status: entity.StatusDNC},
	}

	stats := ComputeStats(contacts, nil)

	sum := stats.Contacts.Pending + stats.Contacts.Contacted + stats.Contacts.Completed + stats.Contacts.DNC
	if sum != stats.Contacts.Total {
		t.Fatalf("status counts %d do not sum to total %d", sum, stats.Contacts.Total)
	}
	if stats.Contacts.Pending != 2 || stats.Contacts.Contacted != 1 || stats.Contacts.Completed != 1 || stats.Contacts.DNC != 1 {
		t.Fatalf("unexpected breakdown: %+v", stats.Contacts)
	}
}

func TestComputeStats_ConnectionRateRounds(t *testing.T) {
	history := []entity.CallHistoryEntry{
		{Outcome: entity.OutcomeConnected},
		{Outcome: entity.OutcomeVoicemail},
		{Outcome: entity.OutcomeNoAnswer},
	}

	stats := ComputeStats(nil, history)

	if stats.Calls.Total != 3 || stats.Calls.Connected != 1 {
		t.Fatalf("unexpected call counts: %+v", stats.Calls)
	}
	// 1/3 is 33.33..., rounds down to 33.
	if stats.Calls.ConnectionRate != 33 {
		t.Fatalf("expected rate 33, got %d", stats.Calls.ConnectionRate)
	}

	history = append(history, entity.CallHistoryEntry{Outcome: entity.OutcomeConnected})
	stats = ComputeStats(nil, history)
	if stats.Calls.ConnectionRate != 50 {
		t.Fatalf("expected rate 50, got %d", stats.Calls.ConnectionRate)
	}
}

func TestComputeStats_RoundsHalfUp(t *testing.T) {
	// 5 connected out of 8 is 62.5, which rounds to 63.
	history := make([]entity.CallHistoryEntry, 0, 8)
	for i := 0; i < 5; i++ {
		history = append(history, entity.CallHistoryEntry{Outcome: entity.OutcomeConnected})
	}
	for i := 0; i < 3; i++ {
		history = append(history, entity.CallHistoryEntry{Outcome: entity.OutcomeBusy})
	}

	stats := ComputeStats(nil, history)
	if stats.Calls.ConnectionRate != 63 {
		t.Fatalf("expected rate 63, got %d", stats.Calls.ConnectionRate)
	}
}
