package dto

// ContactFilter narrows contact listings.
type ContactFilter struct {
	Status     string
	CallListID *int64
	Q          string
}

// CreateContactRequest is the payload for POST /contacts.
type CreateContactRequest struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        *string  `json:"email"`
	Company      *string  `json:"company"`
	Notes        *string  `json:"notes"`
	PropertyType *string  `json:"property_type"`
	Tags         []string `json:"tags"`
	CallListID   *int64   `json:"call_list_id"`
}

// UpdateContactRequest carries a partial contact mutation; nil fields are
// left untouched.
type UpdateContactRequest struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Company      *string   `json:"company"`
	Notes        *string   `json:"notes"`
	PropertyType *string   `json:"property_type"`
	Tags         *[]string `json:"tags"`
	Status       *string   `json:"status"`
	CallListID   *int64    `json:"call_list_id"`
}

// LogCallRequest records one call attempt against a contact.
type LogCallRequest struct {
	Disposition     string `json:"disposition"`
	Notes           string `json:"notes"`
	Outcome         string `json:"outcome"`
	DurationSeconds int    `json:"duration_seconds"`
}
