package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

// ErrContactNotFound is returned when no contact matches the lookup criteria.
var ErrContactNotFound = errors.New("contact not found")

// ContactsRepository describes persistence operations for contacts and their
// call history. It is the single write path: no component mutates a contact
// or history entry except through these operations.
type ContactsRepository interface {
	List(ctx context.Context, filter dto.ContactFilter) ([]entity.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*entity.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LogCall(ctx context.Context, contact *entity.Contact, entry *entity.CallHistoryEntry) (*entity.Contact, *entity.CallHistoryEntry, error)
	CallHistory(ctx context.Context, contactID *uuid.UUID) ([]entity.CallHistoryEntry, error)
}

type pgxPool interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXContactsRepository implements ContactsRepository using pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

const contactColumns = `id, name, phone, email, company, notes, property_type, tags, call_count, last_called, disposition, status, call_list_id, created_at, updated_at`

// List retrieves contacts matching the provided filter in insertion order.
func (r *PGXContactsRepository) List(ctx context.Context, filter dto.ContactFilter) ([]entity.Contact, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + contactColumns + ` FROM contacts`)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.CallListID != nil {
		clauses = append(clauses, fmt.Sprintf("call_list_id = $%d", idx))
		args = append(args, *filter.CallListID)
		idx++
	}
	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR company ILIKE $%d OR phone ILIKE $%d)", idx, idx+1, idx+2))
		args = append(args, pattern, pattern, pattern)
		idx += 3
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY created_at ASC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

// GetByID retrieves a contact by identifier.
func (r *PGXContactsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("query contact by id: %w", err)
	}
	return contact, nil
}

// Create inserts a new contact row with lifecycle defaults applied.
func (r *PGXContactsRepository) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if contact == nil {
		return nil, fmt.Errorf("contact payload is nil")
	}

	status := contact.Status
	if status == "" {
		status = entity.StatusPending
	}
	tags := contact.Tags
	if tags == nil {
		tags = []string{}
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contacts (name, phone, email, company, notes, property_type, tags, status, call_list_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+contactColumns+`
    `, contact.Name, contact.Phone, contact.Email, contact.Company, contact.Notes,
		contact.PropertyType, tags, status, contact.CallListID)

	created, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return created, nil
}

// Update patches contact attributes; nil request fields are left untouched.
func (r *PGXContactsRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*entity.Contact, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}
	if req.PropertyType != nil {
		addSet("property_type", *req.PropertyType)
	}
	if req.Tags != nil {
		addSet("tags", *req.Tags)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.CallListID != nil {
		addSet("call_list_id", *req.CallListID)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE contacts SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), idx, contactColumns)

	contact, err := scanContact(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

// Delete removes a contact; its call history rows cascade at the schema level.
func (r *PGXContactsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

// LogCall persists the post-call contact state and appends the history entry
// in one transaction, so a failure commits neither.
func (r *PGXContactsRepository) LogCall(ctx context.Context, contact *entity.Contact, entry *entity.CallHistoryEntry) (*entity.Contact, *entity.CallHistoryEntry, error) {
	if contact == nil || entry == nil {
		return nil, nil, fmt.Errorf("log call payload is nil")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("start log call tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
        UPDATE contacts
        SET call_count = $1, last_called = $2, disposition = $3, status = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING `+contactColumns+`
    `, contact.CallCount, contact.LastCalled, contact.Disposition, contact.Status, contact.ID)

	updated, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrContactNotFound
		}
		return nil, nil, fmt.Errorf("update contact for call: %w", err)
	}

	histRow := tx.QueryRow(ctx, `
        INSERT INTO call_history (contact_id, created_at, duration_seconds, disposition, notes, outcome)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, contact_id, created_at, duration_seconds, disposition, notes, outcome
    `, entry.ContactID, entry.Timestamp, entry.DurationSeconds, entry.Disposition, entry.Notes, entry.Outcome)

	saved, err := scanHistoryEntry(histRow)
	if err != nil {
		return nil, nil, fmt.Errorf("insert call history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit log call tx: %w", err)
	}

	return updated, saved, nil
}

// CallHistory returns all entries, or those for one contact, newest first.
func (r *PGXContactsRepository) CallHistory(ctx context.Context, contactID *uuid.UUID) ([]entity.CallHistoryEntry, error) {
	query := `SELECT id, contact_id, created_at, duration_seconds, disposition, notes, outcome FROM call_history`
	args := []any{}
	if contactID != nil {
		query += ` WHERE contact_id = $1`
		args = append(args, *contactID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list call history: %w", err)
	}
	defer rows.Close()

	var entries []entity.CallHistoryEntry
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan call history row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate call history: %w", err)
	}
	return entries, nil
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var (
		c           entity.Contact
		email       sql.NullString
		company     sql.NullString
		notes       sql.NullString
		property    sql.NullString
		lastCalled  sql.NullTime
		disposition sql.NullString
		callListID  sql.NullInt64
		status      string
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&email,
		&company,
		&notes,
		&property,
		&c.Tags,
		&c.CallCount,
		&lastCalled,
		&disposition,
		&status,
		&callListID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = entity.ContactStatus(status)
	c.Email = nullStringToPtr(email)
	c.Company = nullStringToPtr(company)
	c.Notes = nullStringToPtr(notes)
	c.PropertyType = nullStringToPtr(property)
	c.Disposition = nullStringToPtr(disposition)
	if lastCalled.Valid {
		ts := lastCalled.Time
		c.LastCalled = &ts
	}
	if callListID.Valid {
		id := callListID.Int64
		c.CallListID = &id
	}

	return &c, nil
}

func scanHistoryEntry(row pgx.Row) (*entity.CallHistoryEntry, error) {
	var (
		e       entity.CallHistoryEntry
		outcome string
	)
	err := row.Scan(&e.ID, &e.ContactID, &e.Timestamp, &e.DurationSeconds, &e.Disposition, &e.Notes, &outcome)
	if err != nil {
		return nil, err
	}
	e.Outcome = entity.CallOutcome(outcome)
	return &e, nil
}

func scanContacts(rows pgx.Rows) ([]entity.Contact, error) {
	var contacts []entity.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}
