package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sgfroerer/swift-dialer-nexus/internal/repository"
	"github.com/sgfroerer/swift-dialer-nexus/internal/service"
)

// DialerHandler exposes the agent-facing dialing endpoints: next-contact
// selection, the simulated dialer, and campaign statistics.
type DialerHandler struct {
	contacts  *service.ContactService
	simulator *service.Simulator
	cooldown  time.Duration
}

// NewDialerHandler creates a new handler instance.
func NewDialerHandler(contacts *service.ContactService, simulator *service.Simulator, cooldown time.Duration) *DialerHandler {
	return &DialerHandler{contacts: contacts, simulator: simulator, cooldown: cooldown}
}

// Next handles GET /dialer/next requests. An empty queue is a normal
// terminal condition, reported as success with a nil contact.
func (h *DialerHandler) Next(c echo.Context) error {
	contact, err := h.contacts.NextContact(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to select next contact")
	}

	if contact == nil {
		return Success(c, http.StatusOK, "queue empty", map[string]any{
			"contact":          nil,
			"cooldown_seconds": int(h.cooldown.Seconds()),
		})
	}

	return Success(c, http.StatusOK, "next contact selected", map[string]any{
		"contact":          contact,
		"cooldown_seconds": int(h.cooldown.Seconds()),
	})
}

// Simulate handles POST /dialer/simulate/:id requests: it verifies the
// contact exists and draws a randomized dial result for the agent to
// confirm or override before logging.
func (h *DialerHandler) Simulate(c echo.Context) error {
	contact, err := h.contacts.GetContact(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrContactNotFound):
			return Error(c, http.StatusNotFound, "contact not found")
		case err.Error() == "invalid contact id":
			return Error(c, http.StatusBadRequest, err.Error())
		default:
			return Error(c, http.StatusInternalServerError, "failed to simulate dial")
		}
	}

	result := h.simulator.Dial()
	return Success(c, http.StatusOK, "dial simulated", map[string]any{
		"contact": contact,
		"result":  result,
	})
}

// Stats handles GET /stats requests.
func (h *DialerHandler) Stats(c echo.Context) error {
	stats, err := h.contacts.Stats(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to compute stats")
	}
	return Success(c, http.StatusOK, "stats computed", stats)
}
