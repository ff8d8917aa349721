package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dialing"
	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
	"github.com/sgfroerer/swift-dialer-nexus/internal/repository"
)

// ContactService orchestrates contact CRUD, queue selection, call logging
// and statistics on top of the contact store.
type ContactService struct {
	repo            repository.ContactsRepository
	region          string
	requireCallList bool
	now             func() time.Time
}

// NewContactService builds a service normalizing phones against the given region.
func NewContactService(repo repository.ContactsRepository, region string) *ContactService {
	return &ContactService{repo: repo, region: region, now: time.Now}
}

// ListContacts returns contacts matching the filter.
func (s *ContactService) ListContacts(ctx context.Context, filter dto.ContactFilter) ([]entity.Contact, error) {
	if filter.Status != "" && !entity.ContactStatus(filter.Status).Valid() {
		return nil, errors.New("invalid status filter")
	}
	return s.repo.List(ctx, filter)
}

// GetContact fetches a single contact by its string identifier.
func (s *ContactService) GetContact(ctx context.Context, id string) (*entity.Contact, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid contact id")
	}
	return s.repo.GetByID(ctx, contactID)
}

// RequireCallList makes CreateContact reject contacts that carry no call
// list assignment. The server-backed deployment enforces this; the local
// store and CSV import keep accepting unassigned contacts.
func (s *ContactService) RequireCallList() {
	s.requireCallList = true
}

// CreateContact validates required fields before any mutation, normalizes
// contact details and persists the record with lifecycle defaults.
func (s *ContactService) CreateContact(ctx context.Context, req dto.CreateContactRequest) (*entity.Contact, error) {
	return s.createContact(ctx, req, s.requireCallList)
}

func (s *ContactService) createContact(ctx context.Context, req dto.CreateContactRequest, requireList bool) (*entity.Contact, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, errors.New("name and phone are required")
	}
	if requireList && req.CallListID == nil {
		return nil, errors.New("call_list_id is required")
	}

	contact := entity.Contact{
		Name:         name,
		Phone:        NormalizePhone(phone, s.region),
		Company:      trimPtr(req.Company),
		Notes:        trimPtr(req.Notes),
		PropertyType: trimPtr(req.PropertyType),
		Tags:         req.Tags,
		Status:       entity.StatusPending,
		CallListID:   req.CallListID,
	}
	if req.Email != nil {
		if email := NormalizeEmail(*req.Email); email != "" {
			contact.Email = &email
		}
	}

	return s.repo.Create(ctx, &contact)
}

// UpdateContact merges the given fields into an existing contact.
func (s *ContactService) UpdateContact(ctx context.Context, id string, req dto.UpdateContactRequest) (*entity.Contact, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid contact id")
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, errors.New("name cannot be empty")
		}
		req.Name = &trimmed
	}
	if req.Phone != nil {
		trimmed := strings.TrimSpace(*req.Phone)
		if trimmed == "" {
			return nil, errors.New("phone cannot be empty")
		}
		normalized := NormalizePhone(trimmed, s.region)
		req.Phone = &normalized
	}
	if req.Email != nil {
		normalized := NormalizeEmail(*req.Email)
		req.Email = &normalized
	}
	if req.Status != nil && !entity.ContactStatus(*req.Status).Valid() {
		return nil, errors.New("invalid status value")
	}

	return s.repo.Update(ctx, contactID, req)
}

// DeleteContact removes a contact; its call history goes with it.
func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid contact id")
	}
	return s.repo.Delete(ctx, contactID)
}

// NextContact picks the next pending contact to present to the agent. A nil
// contact with a nil error means the queue is empty, which is a normal
// terminal condition for a session.
func (s *ContactService) NextContact(ctx context.Context) (*entity.Contact, error) {
	contacts, err := s.repo.List(ctx, dto.ContactFilter{})
	if err != nil {
		return nil, err
	}

	next, ok := dialing.SelectNext(contacts)
	if !ok {
		return nil, nil
	}
	return &next, nil
}

// LogCall records one call attempt: the contact advances through the
// disposition state machine and an append-only history entry is written,
// both in the store's single persistence step.
func (s *ContactService) LogCall(ctx context.Context, id string, req dto.LogCallRequest) (*entity.Contact, *entity.CallHistoryEntry, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, errors.New("invalid contact id")
	}

	code := strings.TrimSpace(req.Disposition)
	if code == "" {
		return nil, nil, errors.New("disposition is required")
	}
	if req.DurationSeconds < 0 {
		return nil, nil, errors.New("duration cannot be negative")
	}

	outcome := entity.CallOutcome(strings.TrimSpace(req.Outcome))
	if outcome == "" {
		outcome = dialing.DefaultOutcome(code)
	} else if !outcome.Valid() {
		return nil, nil, errors.New("invalid outcome value")
	}

	contact, err := s.repo.GetByID(ctx, contactID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	updated := dialing.Apply(*contact, code, now)
	entry := entity.CallHistoryEntry{
		ContactID:       contactID,
		Timestamp:       now,
		DurationSeconds: req.DurationSeconds,
		Disposition:     code,
		Notes:           req.Notes,
		Outcome:         outcome,
	}

	return s.repo.LogCall(ctx, &updated, &entry)
}

// CallHistory returns logged calls, optionally narrowed to one contact.
func (s *ContactService) CallHistory(ctx context.Context, contactID string) ([]entity.CallHistoryEntry, error) {
	if contactID == "" {
		return s.repo.CallHistory(ctx, nil)
	}
	parsed, err := uuid.Parse(contactID)
	if err != nil {
		return nil, errors.New("invalid contact id")
	}
	return s.repo.CallHistory(ctx, &parsed)
}

// Stats recomputes campaign statistics from the store on every call.
func (s *ContactService) Stats(ctx context.Context) (dialing.Stats, error) {
	contacts, err := s.repo.List(ctx, dto.ContactFilter{})
	if err != nil {
		return dialing.Stats{}, err
	}
	history, err := s.repo.CallHistory(ctx, nil)
	if err != nil {
		return dialing.Stats{}, err
	}
	return dialing.ComputeStats(contacts, history), nil
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
