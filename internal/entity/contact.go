package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks where a contact sits in the calling lifecycle.
type ContactStatus string

const (
	StatusPending   ContactStatus = "pending"
	StatusContacted ContactStatus = "contacted"
	StatusCompleted ContactStatus = "completed"
	StatusDNC       ContactStatus = "dnc"
)

// Valid reports whether the status is one of the four known lifecycle states.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusCompleted, StatusDNC:
		return true
	}
	return false
}

// Contact represents a person on a call list.
type Contact struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Email        *string       `json:"email,omitempty"`
	Company      *string       `json:"company,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
	PropertyType *string       `json:"property_type,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	CallCount    int           `json:"call_count"`
	LastCalled   *time.Time    `json:"last_called,omitempty"`
	Disposition  *string       `json:"disposition,omitempty"`
	Status       ContactStatus `json:"status"`
	CallListID   *int64        `json:"call_list_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// CallList groups contacts under a named campaign list.
type CallList struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
