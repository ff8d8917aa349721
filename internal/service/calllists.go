package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
	"github.com/sgfroerer/swift-dialer-nexus/internal/repository"
)

// CallListService manages named campaign lists (server-backed variant only).
type CallListService struct {
	repo repository.CallListsRepository
}

// NewCallListService creates a new instance of CallListService.
func NewCallListService(repo repository.CallListsRepository) *CallListService {
	return &CallListService{repo: repo}
}

// ListCallLists returns every call list.
func (s *CallListService) ListCallLists(ctx context.Context) ([]entity.CallList, error) {
	return s.repo.List(ctx)
}

// CreateCallList creates a list after validating the unique name requirement.
func (s *CallListService) CreateCallList(ctx context.Context, name string) (*entity.CallList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	return s.repo.Create(ctx, name)
}
