package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

var (
	// ErrCallListNotFound is returned when no call list matches the lookup.
	ErrCallListNotFound = errors.New("call list not found")
	// ErrCallListNameDuplicate is returned when a list name is already taken.
	ErrCallListNameDuplicate = errors.New("call list name already exists")
)

// CallListsRepository declares persistence operations for call lists.
type CallListsRepository interface {
	List(ctx context.Context) ([]entity.CallList, error)
	Create(ctx context.Context, name string) (*entity.CallList, error)
}

// PGXCallListsRepository implements CallListsRepository with pgx.
type PGXCallListsRepository struct {
	pool pgxPool
}

// NewPGXCallListsRepository instantiates a call lists repository.
func NewPGXCallListsRepository(pool *pgxpool.Pool) *PGXCallListsRepository {
	return &PGXCallListsRepository{pool: pool}
}

// List returns all call lists in creation order.
func (r *PGXCallListsRepository) List(ctx context.Context) ([]entity.CallList, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM call_lists ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list call lists: %w", err)
	}
	defer rows.Close()

	var lists []entity.CallList
	for rows.Next() {
		var list entity.CallList
		if err := rows.Scan(&list.ID, &list.Name, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan call list row: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate call lists: %w", err)
	}
	return lists, nil
}

// Create inserts a new call list row; the name is unique.
func (r *PGXCallListsRepository) Create(ctx context.Context, name string) (*entity.CallList, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO call_lists (name)
        VALUES ($1)
        RETURNING id, name, created_at
    `, name)

	var list entity.CallList
	if err := row.Scan(&list.ID, &list.Name, &list.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %v", ErrCallListNameDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert call list: %w", err)
	}

	return &list, nil
}
