package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
	"github.com/sgfroerer/swift-dialer-nexus/internal/repository"
	"github.com/sgfroerer/swift-dialer-nexus/internal/service"
)

// CallListsHandler exposes call list endpoints (server-backed variant only).
type CallListsHandler struct {
	lists *service.CallListService
}

// NewCallListsHandler constructs a handler instance.
func NewCallListsHandler(lists *service.CallListService) *CallListsHandler {
	return &CallListsHandler{lists: lists}
}

// List handles GET /call-lists requests.
func (h *CallListsHandler) List(c echo.Context) error {
	lists, err := h.lists.ListCallLists(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list call lists")
	}
	return Success(c, http.StatusOK, "call lists retrieved", lists)
}

// Create handles POST /call-lists requests.
func (h *CallListsHandler) Create(c echo.Context) error {
	var req dto.CreateCallListRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	list, err := h.lists.CreateCallList(c.Request().Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCallListNameDuplicate):
			return Error(c, http.StatusConflict, "call list name already exists")
		case err.Error() == "name is required":
			return Error(c, http.StatusBadRequest, err.Error())
		default:
			return Error(c, http.StatusInternalServerError, "failed to create call list")
		}
	}

	return Success(c, http.StatusCreated, "call list created", list)
}
