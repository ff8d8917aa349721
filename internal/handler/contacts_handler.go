package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
	"github.com/sgfroerer/swift-dialer-nexus/internal/repository"
	"github.com/sgfroerer/swift-dialer-nexus/internal/service"
)

// ContactsHandler exposes contact CRUD and call-history endpoints.
type ContactsHandler struct {
	contacts *service.ContactService
}

// NewContactsHandler creates a new handler instance.
func NewContactsHandler(contacts *service.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

// List handles GET /contacts requests.
func (h *ContactsHandler) List(c echo.Context) error {
	filter := dto.ContactFilter{
		Status: strings.TrimSpace(c.QueryParam("status")),
		Q:      strings.TrimSpace(c.QueryParam("q")),
	}

	if listParam := strings.TrimSpace(c.QueryParam("call_list_id")); listParam != "" {
		id, err := strconv.ParseInt(listParam, 10, 64)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid call_list_id")
		}
		filter.CallListID = &id
	}

	contacts, err := h.contacts.ListContacts(c.Request().Context(), filter)
	if err != nil {
		if err.Error() == "invalid status filter" {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to list contacts")
	}

	return Success(c, http.StatusOK, "contacts retrieved", contacts)
}

// Get handles GET /contacts/:id requests.
func (h *ContactsHandler) Get(c echo.Context) error {
	contact, err := h.contacts.GetContact(c.Request().Context(), c.Param("id"))
	if err != nil {
		return contactError(c, err, "failed to fetch contact")
	}
	return Success(c, http.StatusOK, "contact retrieved", contact)
}

// Create handles POST /contacts requests.
func (h *ContactsHandler) Create(c echo.Context) error {
	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	contact, err := h.contacts.CreateContact(c.Request().Context(), req)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return Success(c, http.StatusCreated, "contact created", contact)
}

// Update handles PUT /contacts/:id requests.
func (h *ContactsHandler) Update(c echo.Context) error {
	var req dto.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	contact, err := h.contacts.UpdateContact(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return contactError(c, err, "failed to update contact")
	}

	return Success(c, http.StatusOK, "contact updated", contact)
}

// Delete handles DELETE /contacts/:id requests; call history cascades.
func (h *ContactsHandler) Delete(c echo.Context) error {
	if err := h.contacts.DeleteContact(c.Request().Context(), c.Param("id")); err != nil {
		return contactError(c, err, "failed to delete contact")
	}
	return Success(c, http.StatusOK, "contact deleted", nil)
}

// LogCall handles POST /contacts/:id/calls requests.
func (h *ContactsHandler) LogCall(c echo.Context) error {
	var req dto.LogCallRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	contact, entry, err := h.contacts.LogCall(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return contactError(c, err, "failed to log call")
	}

	return Success(c, http.StatusCreated, "call logged", map[string]any{
		"contact": contact,
		"entry":   entry,
	})
}

// History handles GET /call-history requests.
func (h *ContactsHandler) History(c echo.Context) error {
	entries, err := h.contacts.CallHistory(c.Request().Context(), strings.TrimSpace(c.QueryParam("contact_id")))
	if err != nil {
		if err.Error() == "invalid contact id" {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to list call history")
	}
	return Success(c, http.StatusOK, "call history retrieved", entries)
}

// contactError maps service errors onto the response envelope: not-found is
// a normal negative response, malformed input is the caller's fault, and
// everything else is a server error.
func contactError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrContactNotFound):
		return Error(c, http.StatusNotFound, "contact not found")
	case isValidationMessage(err):
		return Error(c, http.StatusBadRequest, err.Error())
	default:
		return Error(c, http.StatusInternalServerError, fallback)
	}
}

var validationMessages = map[string]bool{
	"invalid contact id":          true,
	"invalid status value":        true,
	"invalid outcome value":       true,
	"name cannot be empty":        true,
	"phone cannot be empty":       true,
	"name and phone are required": true,
	"call_list_id is required":    true,
	"disposition is required":     true,
	"duration cannot be negative": true,
}

func isValidationMessage(err error) bool {
	return validationMessages[err.Error()]
}
