package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sgfroerer/swift-dialer-nexus/internal/config"
	"github.com/sgfroerer/swift-dialer-nexus/internal/handler"
	middlewarepkg "github.com/sgfroerer/swift-dialer-nexus/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router. Nil handlers are
// skipped: the local storage variant runs without call lists and CSV upload
// still works, the dialer group mounts only when a simulator is wired.
type Handlers struct {
	Contacts  *handler.ContactsHandler
	CallLists *handler.CallListsHandler
	Dialer    *handler.DialerHandler
	CSV       *handler.CSVHandler
	Templates *handler.TemplatesHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.GET("/contacts", handlers.Contacts.List)
	e.POST("/contacts", handlers.Contacts.Create)
	e.GET("/contacts/:id", handlers.Contacts.Get)
	e.PUT("/contacts/:id", handlers.Contacts.Update)
	e.DELETE("/contacts/:id", handlers.Contacts.Delete)
	e.GET("/call-history", handlers.Contacts.History)

	if handlers.CallLists != nil {
		e.GET("/call-lists", handlers.CallLists.List)
		e.POST("/call-lists", handlers.CallLists.Create)
	}

	if handlers.CSV != nil {
		e.POST("/contacts/import-csv", handlers.CSV.Import)
		e.GET("/contacts/export-csv", handlers.CSV.Export)
	}

	if handlers.Templates != nil {
		e.GET("/templates", handlers.Templates.List)
		e.POST("/templates", handlers.Templates.Create)
		e.PUT("/templates/:id", handlers.Templates.Update)
		e.DELETE("/templates/:id", handlers.Templates.Delete)
		e.POST("/templates/:id/render", handlers.Templates.Render)
	}

	if handlers.Dialer != nil {
		dialLimiter := middlewarepkg.DialRateLimiter(cfg.RateLimitDial)

		dial := e.Group("/dialer", dialLimiter)
		dial.GET("/next", handlers.Dialer.Next)
		dial.POST("/simulate/:id", handlers.Dialer.Simulate)

		e.POST("/contacts/:id/calls", handlers.Contacts.LogCall, dialLimiter)
		e.GET("/stats", handlers.Dialer.Stats)
	}
}
