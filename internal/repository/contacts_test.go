package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

type stubPool struct {
	queryRowFunc func(ctx context.Context, query string, args ...any) pgx.Row
	queryFunc    func(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	execFunc     func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	beginTxFunc  func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

func (s *stubPool) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if s.queryRowFunc != nil {
		return s.queryRowFunc(ctx, query, args...)
	}
	return &stubRow{scan: func(dest ...any) error { return nil }}
}

func (s *stubPool) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if s.queryFunc != nil {
		return s.queryFunc(ctx, query, args...)
	}
	return nil, errors.New("query not implemented")
}

func (s *stubPool) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if s.execFunc != nil {
		return s.execFunc(ctx, query, args...)
	}
	return pgconn.CommandTag{}, errors.New("exec not implemented")
}

func (s *stubPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if s.beginTxFunc != nil {
		return s.beginTxFunc(ctx, txOptions)
	}
	return nil, errors.New("begin tx not implemented")
}

type stubRow struct {
	scan func(dest ...any) error
}

func (s *stubRow) Scan(dest ...any) error {
	if s.scan != nil {
		return s.scan(dest...)
	}
	return nil
}

type stubRows struct {
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (s *stubRows) Close() {}

func (s *stubRows) Err() error { return s.err }

func (s *stubRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (s *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (s *stubRows) Next() bool {
	if s.err != nil {
		return false
	}
	if s.idx < len(s.scans) {
		s.idx++
		return true
	}
	return false
}

func (s *stubRows) Scan(dest ...any) error {
	if s.idx == 0 || s.idx > len(s.scans) {
		return errors.New("scan called out of order")
	}
	return s.scans[s.idx-1](dest...)
}

func (s *stubRows) Values() ([]any, error) { return nil, nil }

func (s *stubRows) RawValues() [][]byte { return nil }

func (s *stubRows) Conn() *pgx.Conn { return nil }

// stubTx overrides only the methods the repository exercises inside a
// transaction; anything else panics through the embedded nil interface.
type stubTx struct {
	pgx.Tx
	queryRowFunc func(ctx context.Context, query string, args ...any) pgx.Row
	commitErr    error
	rolledBack   bool
}

func (s *stubTx) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if s.queryRowFunc != nil {
		return s.queryRowFunc(ctx, query, args...)
	}
	return &stubRow{scan: func(dest ...any) error { return nil }}
}

func (s *stubTx) Commit(ctx context.Context) error { return s.commitErr }

func (s *stubTx) Rollback(ctx context.Context) error {
	s.rolledBack = true
	return nil
}

func scanContactFixture(id uuid.UUID, name string, callCount int) func(dest ...any) error {
	return func(dest ...any) error {
		created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = name
		*dest[2].(*string) = "+12125550123"
		// optional columns stay NULL
		*dest[7].(*[]string) = []string{"warm"}
		*dest[8].(*int) = callCount
		*dest[11].(*string) = "pending"
		*dest[13].(*time.Time) = created
		*dest[14].(*time.Time) = created
		return nil
	}
}

func TestPGXContactsRepository_GetByID(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	repo := &PGXContactsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: scanContactFixture(id, "Jane Doe", 2)}
		},
	}}

	contact, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID != id || contact.Name != "Jane Doe" || contact.CallCount != 2 {
		t.Fatalf("unexpected contact: %+v", contact)
	}
	if contact.Status != entity.StatusPending {
		t.Fatalf("unexpected status: %s", contact.Status)
	}
	if contact.Email != nil || contact.LastCalled != nil || contact.CallListID != nil {
		t.Fatalf("NULL columns should map to nil pointers: %+v", contact)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	if _, err := repo.GetByID(context.Background(), uuid.New()); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestPGXContactsRepository_ListFilters(t *testing.T) {
	var capturedQuery string
	var capturedArgs []any
	repo := &PGXContactsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			capturedQuery = query
			capturedArgs = args
			return &stubRows{}, nil
		},
	}}

	listID := int64(4)
	_, err := repo.List(context.Background(), dto.ContactFilter{Status: "pending", CallListID: &listID, Q: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(capturedQuery, "status = $1") {
		t.Fatalf("expected status clause, got %q", capturedQuery)
	}
	if !strings.Contains(capturedQuery, "call_list_id = $2") {
		t.Fatalf("expected call list clause, got %q", capturedQuery)
	}
	if !strings.Contains(capturedQuery, "ILIKE $3") {
		t.Fatalf("expected search clause, got %q", capturedQuery)
	}
	if !strings.Contains(capturedQuery, "ORDER BY created_at ASC") {
		t.Fatalf("expected stable ordering, got %q", capturedQuery)
	}
	if len(capturedArgs) != 5 {
		t.Fatalf("expected 5 args (status, list, 3x pattern), got %d", len(capturedArgs))
	}
	if capturedArgs[2] != "%acme%" {
		t.Fatalf("expected wildcard pattern, got %v", capturedArgs[2])
	}
}

func TestPGXContactsRepository_ListScansRows(t *testing.T) {
	repo := &PGXContactsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{
				scans: []func(dest ...any) error{
					scanContactFixture(uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), "Jane", 0),
					scanContactFixture(uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"), "John", 1),
				},
			}, nil
		},
	}}

	contacts, err := repo.List(context.Background(), dto.ContactFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 || contacts[0].Name != "Jane" || contacts[1].Name != "John" {
		t.Fatalf("unexpected contacts: %+v", contacts)
	}
}

func TestPGXContactsRepository_Create(t *testing.T) {
	var capturedArgs []any
	repo := &PGXContactsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			capturedArgs = args
			return &stubRow{scan: scanContactFixture(uuid.New(), "Jane Doe", 0)}
		},
	}}

	created, err := repo.Create(context.Background(), &entity.Contact{Name: "Jane Doe", Phone: "+12125550123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Jane Doe" {
		t.Fatalf("unexpected contact: %+v", created)
	}

	// zero-value contacts insert with lifecycle defaults
	if capturedArgs[7] != entity.StatusPending {
		t.Fatalf("expected pending default, got %v", capturedArgs[7])
	}
	if tags, ok := capturedArgs[6].([]string); !ok || tags == nil {
		t.Fatalf("expected empty tag slice, got %v", capturedArgs[6])
	}

	if _, err := repo.Create(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil payload")
	}
}

func TestPGXContactsRepository_Update(t *testing.T) {
	var capturedQuery string
	repo := &PGXContactsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			capturedQuery = query
			return &stubRow{scan: scanContactFixture(uuid.New(), "Renamed", 0)}
		},
	}}

	name := "Renamed"
	contact, err := repo.Update(context.Background(), uuid.New(), dto.UpdateContactRequest{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.Name != "Renamed" {
		t.Fatalf("unexpected contact: %+v", contact)
	}
	if !strings.Contains(capturedQuery, "name = $1") || !strings.Contains(capturedQuery, "updated_at = NOW()") {
		t.Fatalf("unexpected update query: %q", capturedQuery)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	if _, err := repo.Update(context.Background(), uuid.New(), dto.UpdateContactRequest{Name: &name}); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestPGXContactsRepository_UpdateWithoutFieldsFetches(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	var capturedQuery string
	repo := &PGXContactsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			capturedQuery = query
			return &stubRow{scan: scanContactFixture(id, "Jane", 0)}
		},
	}}

	contact, err := repo.Update(context.Background(), id, dto.UpdateContactRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID != id {
		t.Fatalf("unexpected contact: %+v", contact)
	}
	if !strings.HasPrefix(capturedQuery, "SELECT") {
		t.Fatalf("empty patch should read, not write: %q", capturedQuery)
	}
}

func TestPGXContactsRepository_Delete(t *testing.T) {
	repo := &PGXContactsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}}

	if err := repo.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.pool = &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}
	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestPGXContactsRepository_LogCall(t *testing.T) {
	contactID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	historyID := uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")
	logged := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	calls := 0
	tx := &stubTx{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			calls++
			if calls == 1 {
				return &stubRow{scan: scanContactFixture(contactID, "Jane", 3)}
			}
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*uuid.UUID) = historyID
				*dest[1].(*uuid.UUID) = contactID
				*dest[2].(*time.Time) = logged
				*dest[3].(*int) = 45
				*dest[4].(*string) = "connected"
				*dest[5].(*string) = "good call"
				*dest[6].(*string) = "connected"
				return nil
			}}
		},
	}
	repo := &PGXContactsRepository{pool: &stubPool{
		beginTxFunc: func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
			return tx, nil
		},
	}}

	contact := &entity.Contact{ID: contactID, CallCount: 3, Status: entity.StatusContacted}
	entry := &entity.CallHistoryEntry{ContactID: contactID, Timestamp: logged, DurationSeconds: 45, Disposition: "connected", Notes: "good call", Outcome: entity.OutcomeConnected}

	updated, saved, err := repo.LogCall(context.Background(), contact, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != contactID || updated.CallCount != 3 {
		t.Fatalf("unexpected contact: %+v", updated)
	}
	if saved.ID != historyID || saved.Outcome != entity.OutcomeConnected {
		t.Fatalf("unexpected entry: %+v", saved)
	}
	if calls != 2 {
		t.Fatalf("expected contact update plus history insert, got %d statements", calls)
	}
}

func TestPGXContactsRepository_LogCall_MissingContactRollsBack(t *testing.T) {
	tx := &stubTx{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	repo := &PGXContactsRepository{pool: &stubPool{
		beginTxFunc: func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
			return tx, nil
		},
	}}

	contact := &entity.Contact{ID: uuid.New()}
	entry := &entity.CallHistoryEntry{ContactID: contact.ID}
	if _, _, err := repo.LogCall(context.Background(), contact, entry); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if !tx.rolledBack {
		t.Fatal("expected transaction rollback")
	}
}

func TestPGXContactsRepository_CallHistoryFilter(t *testing.T) {
	var capturedQuery string
	var capturedArgs []any
	repo := &PGXContactsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			capturedQuery = query
			capturedArgs = args
			return &stubRows{}, nil
		},
	}}

	if _, err := repo.CallHistory(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(capturedQuery, "WHERE") {
		t.Fatalf("unfiltered history should have no WHERE clause: %q", capturedQuery)
	}
	if !strings.Contains(capturedQuery, "ORDER BY created_at DESC") {
		t.Fatalf("expected newest-first ordering: %q", capturedQuery)
	}

	id := uuid.New()
	if _, err := repo.CallHistory(context.Background(), &id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(capturedQuery, "contact_id = $1") || len(capturedArgs) != 1 {
		t.Fatalf("expected contact filter: %q %v", capturedQuery, capturedArgs)
	}
}
