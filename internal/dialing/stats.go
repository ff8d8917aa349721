package dialing

import (
	"math"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

// ContactCounts breaks the contact set down by lifecycle status.
// The per-status counts always sum to Total.
type ContactCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Contacted int `json:"contacted"`
	Completed int `json:"completed"`
	DNC       int `json:"dnc"`
}

// CallCounts summarises the logged call history.
type CallCounts struct {
	Total          int `json:"total"`
	Connected      int `json:"connected"`
	ConnectionRate int `json:"connection_rate"`
}

// Stats is a point-in-time snapshot derived from the store; nothing is
// cached or incrementally maintained.
type Stats struct {
	Contacts ContactCounts `json:"contacts"`
	Calls    CallCounts    `json:"calls"`
}

// ComputeStats recomputes campaign statistics from scratch. An empty contact
// set or empty history yields zero counts and a zero connection rate.
func ComputeStats(contacts []entity.Contact, history []entity.CallHistoryEntry) Stats {
	var stats Stats

	stats.Contacts.Total = len(contacts)
	for _, c := range contacts {
		switch c.Status {
		case entity.StatusPending:
			stats.Contacts.Pending++
		case entity.StatusContacted:
			stats.Contacts.Contacted++
		case entity.StatusCompleted:
			stats.Contacts.Completed++
		case entity.StatusDNC:
			stats.Contacts.DNC++
		}
	}

	stats.Calls.Total = len(history)
	for _, h := range history {
		if h.Outcome == entity.OutcomeConnected {
			stats.Calls.Connected++
		}
	}
	if stats.Calls.Total > 0 {
		rate := float64(stats.Calls.Connected) / float64(stats.Calls.Total) * 100
		stats.Calls.ConnectionRate = int(math.Round(rate))
	}

	return stats
}
