// Package localstore is the on-device persistence variant of the contact
// store: a single JSON snapshot file with dates carried as RFC3339 strings
// and a version marker that distinguishes first-run seeding from subsequent
// loads. It satisfies the same repository contract as the Postgres variant.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
	"github.com/sgfroerer/swift-dialer-nexus/internal/repository"
)

const snapshotVersion = 1

type storedContact struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        *string  `json:"email,omitempty"`
	Company      *string  `json:"company,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	CallCount    int      `json:"call_count"`
	LastCalled   string   `json:"last_called,omitempty"`
	Disposition  *string  `json:"disposition,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type storedEntry struct {
	ID              string `json:"id"`
	ContactID       string `json:"contact_id"`
	Timestamp       string `json:"timestamp"`
	DurationSeconds int    `json:"duration_seconds"`
	Disposition     string `json:"disposition"`
	Notes           string `json:"notes"`
	Outcome         string `json:"outcome"`
}

type snapshot struct {
	Version     int             `json:"version"`
	Contacts    []storedContact `json:"contacts"`
	CallHistory []storedEntry   `json:"call_history"`
}

// Store holds the session's contacts and call history in memory and writes
// the full snapshot back to disk before any mutating call returns.
type Store struct {
	mu       sync.Mutex
	path     string
	contacts []entity.Contact
	history  []entity.CallHistoryEntry
	now      func() time.Time
}

var _ repository.ContactsRepository = (*Store)(nil)

// Open loads the snapshot at path, running the repair pass over whatever it
// finds. A missing file or a version marker of zero means first run: the
// store starts from the sample contact set when seed is true, or empty
// otherwise. A file that cannot be parsed at all is logged and replaced by
// defaults rather than aborting the session.
func Open(path string, seed bool) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if seed {
			s.contacts = sampleContacts(s.now())
		}
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("local store: snapshot at %s is corrupt, starting from defaults: %v", path, err)
		snap = snapshot{}
	}

	if snap.Version == 0 {
		if seed {
			s.contacts = sampleContacts(s.now())
		}
	} else {
		s.contacts, s.history = repair(snap, s.now())
	}

	// The repair pass is idempotent; re-persisting keeps the on-disk copy clean.
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// repair validates every stored record individually: recoverable issues are
// fixed in place, records missing identity or required fields are dropped.
func repair(snap snapshot, now time.Time) ([]entity.Contact, []entity.CallHistoryEntry) {
	var contacts []entity.Contact
	ids := make(map[uuid.UUID]bool)

	for _, sc := range snap.Contacts {
		id, err := uuid.Parse(sc.ID)
		if err != nil || sc.Name == "" || sc.Phone == "" {
			continue
		}

		c := entity.Contact{
			ID:           id,
			Name:         sc.Name,
			Phone:        sc.Phone,
			Email:        sc.Email,
			Company:      sc.Company,
			Notes:        sc.Notes,
			PropertyType: sc.PropertyType,
			Tags:         sc.Tags,
			CallCount:    sc.CallCount,
			Disposition:  sc.Disposition,
			Status:       entity.ContactStatus(sc.Status),
			CreatedAt:    parseTimeOr(sc.CreatedAt, now),
			UpdatedAt:    parseTimeOr(sc.UpdatedAt, now),
		}
		if c.CallCount < 0 {
			c.CallCount = 0
		}
		if !c.Status.Valid() {
			c.Status = entity.StatusPending
		}
		if ts, err := time.Parse(time.RFC3339Nano, sc.LastCalled); err == nil {
			c.LastCalled = &ts
		}

		contacts = append(contacts, c)
		ids[id] = true
	}

	var history []entity.CallHistoryEntry
	for _, se := range snap.CallHistory {
		id, err := uuid.Parse(se.ID)
		if err != nil {
			continue
		}
		contactID, err := uuid.Parse(se.ContactID)
		if err != nil || !ids[contactID] {
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, se.Timestamp)
		if err != nil {
			continue
		}

		e := entity.CallHistoryEntry{
			ID:              id,
			ContactID:       contactID,
			Timestamp:       ts,
			DurationSeconds: se.DurationSeconds,
			Disposition:     se.Disposition,
			Notes:           se.Notes,
			Outcome:         entity.CallOutcome(se.Outcome),
		}
		if e.DurationSeconds < 0 {
			e.DurationSeconds = 0
		}
		if !e.Outcome.Valid() {
			e.Outcome = entity.OutcomeFailed
		}
		history = append(history, e)
	}

	return contacts, history
}

func parseTimeOr(value string, fallback time.Time) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return fallback
	}
	return ts
}

// persistLocked serialises the collections and replaces the snapshot file.
// Callers must hold the mutex (or be the only reference, as in Open).
func (s *Store) persistLocked() error {
	snap := snapshot{Version: snapshotVersion}
	for _, c := range s.contacts {
		sc := storedContact{
			ID:           c.ID.String(),
			Name:         c.Name,
			Phone:        c.Phone,
			Email:        c.Email,
			Company:      c.Company,
			Notes:        c.Notes,
			PropertyType: c.PropertyType,
			Tags:         c.Tags,
			CallCount:    c.CallCount,
			Disposition:  c.Disposition,
			Status:       string(c.Status),
			CreatedAt:    c.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt:    c.UpdatedAt.Format(time.RFC3339Nano),
		}
		if c.LastCalled != nil {
			sc.LastCalled = c.LastCalled.Format(time.RFC3339Nano)
		}
		snap.Contacts = append(snap.Contacts, sc)
	}
	for _, e := range s.history {
		snap.CallHistory = append(snap.CallHistory, storedEntry{
			ID:              e.ID.String(),
			ContactID:       e.ContactID.String(),
			Timestamp:       e.Timestamp.Format(time.RFC3339Nano),
			DurationSeconds: e.DurationSeconds,
			Disposition:     e.Disposition,
			Notes:           e.Notes,
			Outcome:         string(e.Outcome),
		})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// List returns contacts matching the filter in insertion order.
func (s *Store) List(ctx context.Context, filter dto.ContactFilter) ([]entity.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Contact
	for _, c := range s.contacts {
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		if filter.Q != "" && !contactMatches(c, filter.Q) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func contactMatches(c entity.Contact, q string) bool {
	if containsFold(c.Name, q) || containsFold(c.Phone, q) {
		return true
	}
	return c.Company != nil && containsFold(*c.Company, q)
}

// GetByID retrieves a contact by identifier.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contacts {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, repository.ErrContactNotFound
}

// Create appends a new contact with a fresh id and lifecycle defaults.
func (s *Store) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if contact == nil {
		return nil, fmt.Errorf("contact payload is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	created := *contact
	created.ID = uuid.New()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Status == "" {
		created.Status = entity.StatusPending
	}
	if created.CallCount < 0 {
		created.CallCount = 0
	}

	s.contacts = append(s.contacts, created)
	if err := s.persistLocked(); err != nil {
		s.contacts = s.contacts[:len(s.contacts)-1]
		return nil, err
	}
	return &created, nil
}

// Update merges the given fields into the stored record.
func (s *Store) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*entity.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, repository.ErrContactNotFound
	}

	previous := s.contacts[idx]
	c := previous
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Company != nil {
		c.Company = req.Company
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}
	if req.PropertyType != nil {
		c.PropertyType = req.PropertyType
	}
	if req.Tags != nil {
		c.Tags = *req.Tags
	}
	if req.Status != nil {
		c.Status = entity.ContactStatus(*req.Status)
	}
	c.UpdatedAt = s.now()

	s.contacts[idx] = c
	if err := s.persistLocked(); err != nil {
		s.contacts[idx] = previous
		return nil, err
	}
	return &c, nil
}

// Delete removes the contact and every call history entry referencing it.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return repository.ErrContactNotFound
	}

	prevContacts := s.contacts
	prevHistory := s.history

	s.contacts = append(append([]entity.Contact{}, s.contacts[:idx]...), s.contacts[idx+1:]...)
	var kept []entity.CallHistoryEntry
	for _, e := range s.history {
		if e.ContactID != id {
			kept = append(kept, e)
		}
	}
	s.history = kept

	if err := s.persistLocked(); err != nil {
		s.contacts = prevContacts
		s.history = prevHistory
		return err
	}
	return nil
}

// LogCall replaces the contact with its post-call state and appends the
// history entry; either both survive the persistence step or neither does.
func (s *Store) LogCall(ctx context.Context, contact *entity.Contact, entry *entity.CallHistoryEntry) (*entity.Contact, *entity.CallHistoryEntry, error) {
	if contact == nil || entry == nil {
		return nil, nil, fmt.Errorf("log call payload is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(contact.ID)
	if idx < 0 {
		return nil, nil, repository.ErrContactNotFound
	}

	previous := s.contacts[idx]

	updated := *contact
	updated.UpdatedAt = s.now()
	saved := *entry
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}

	s.contacts[idx] = updated
	s.history = append(s.history, saved)
	if err := s.persistLocked(); err != nil {
		s.contacts[idx] = previous
		s.history = s.history[:len(s.history)-1]
		return nil, nil, err
	}
	return &updated, &saved, nil
}

// CallHistory returns all entries, or those for one contact, newest first.
func (s *Store) CallHistory(ctx context.Context, contactID *uuid.UUID) ([]entity.CallHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.CallHistoryEntry
	for _, e := range s.history {
		if contactID != nil && e.ContactID != *contactID {
			continue
		}
		out = append(out, e)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}
