package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sgfroerer/swift-dialer-nexus/internal/service"
)

// CSVHandler handles bulk contact import and export.
type CSVHandler struct {
	contacts *service.ContactService
}

// NewCSVHandler wires a handler backed by the contact service.
func NewCSVHandler(contacts *service.ContactService) *CSVHandler {
	return &CSVHandler{contacts: contacts}
}

// Import handles POST /contacts/import-csv requests.
func (h *CSVHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "missing csv file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to open file")
	}
	defer file.Close()

	var callListID *int64
	if listParam := strings.TrimSpace(c.FormValue("call_list_id")); listParam != "" {
		id, err := strconv.ParseInt(listParam, 10, 64)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid call_list_id")
		}
		callListID = &id
	}

	summary, err := h.contacts.ImportCSV(c.Request().Context(), file, callListID)
	if err != nil {
		var validationErr service.CSVValidationError
		if errors.As(err, &validationErr) {
			return Error(c, http.StatusBadRequest, validationErr.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to process csv")
	}

	return Success(c, http.StatusOK, "contacts CSV processed", summary)
}

// Export handles GET /contacts/export-csv requests. The CSV is rendered
// into memory first so a storage failure still produces an error envelope
// instead of a truncated 200 response.
func (h *CSVHandler) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.contacts.ExportCSV(c.Request().Context(), &buf); err != nil {
		return Error(c, http.StatusInternalServerError, "failed to export contacts")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contacts.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
