package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
	"github.com/sgfroerer/swift-dialer-nexus/internal/service"
)

// TemplatesHandler exposes script/text template endpoints.
type TemplatesHandler struct {
	templates *service.TemplateService
	contacts  *service.ContactService
}

// NewTemplatesHandler constructs a handler instance.
func NewTemplatesHandler(templates *service.TemplateService, contacts *service.ContactService) *TemplatesHandler {
	return &TemplatesHandler{templates: templates, contacts: contacts}
}

// List handles GET /templates requests, optionally filtered by kind.
func (h *TemplatesHandler) List(c echo.Context) error {
	kind := service.TemplateKind(strings.TrimSpace(c.QueryParam("kind")))
	if kind != "" && kind != service.KindScript && kind != service.KindText {
		return Error(c, http.StatusBadRequest, "kind must be script or text")
	}
	return Success(c, http.StatusOK, "templates retrieved", h.templates.ListTemplates(kind))
}

// Create handles POST /templates requests.
func (h *TemplatesHandler) Create(c echo.Context) error {
	var req dto.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	template, err := h.templates.CreateTemplate(req.Name, service.TemplateKind(req.Kind), req.Content)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusCreated, "template created", template)
}

// Update handles PUT /templates/:id requests.
func (h *TemplatesHandler) Update(c echo.Context) error {
	var req dto.UpdateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	template, err := h.templates.UpdateTemplate(c.Param("id"), req.Name, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			return Error(c, http.StatusNotFound, "template not found")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusOK, "template updated", template)
}

// Delete handles DELETE /templates/:id requests.
func (h *TemplatesHandler) Delete(c echo.Context) error {
	if err := h.templates.DeleteTemplate(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			return Error(c, http.StatusNotFound, "template not found")
		case errors.Is(err, service.ErrTemplateProtected):
			return Error(c, http.StatusBadRequest, err.Error())
		default:
			return Error(c, http.StatusInternalServerError, "failed to delete template")
		}
	}
	return Success(c, http.StatusOK, "template deleted", nil)
}

// Render handles POST /templates/:id/render requests, substituting a
// contact's details into the template.
func (h *TemplatesHandler) Render(c echo.Context) error {
	var req struct {
		ContactID string `json:"contact_id"`
	}
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	contact, err := h.contacts.GetContact(c.Request().Context(), req.ContactID)
	if err != nil {
		return contactError(c, err, "failed to fetch contact")
	}

	rendered, err := h.templates.Render(c.Param("id"), *contact)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			return Error(c, http.StatusNotFound, "template not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to render template")
	}

	return Success(c, http.StatusOK, "template rendered", map[string]string{"content": rendered})
}
