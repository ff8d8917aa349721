package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sgfroerer/swift-dialer-nexus/internal/dto"
)

// CSVValidationError indicates that the provided CSV payload is invalid.
type CSVValidationError struct {
	Message string
}

// Error implements the error interface.
func (e CSVValidationError) Error() string {
	return e.Message
}

// ImportSummary reports how many rows were imported or silently skipped.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Column aliases are matched case-insensitively against the header row.
var csvColumnAliases = map[string]string{
	"name":          "name",
	"full name":     "name",
	"contact name":  "name",
	"phone":         "phone",
	"phone number":  "phone",
	"telephone":     "phone",
	"email":         "email",
	"email address": "email",
	"company":       "company",
	"business":      "company",
	"organization":  "company",
	"property type": "property_type",
	"property":      "property_type",
	"type":          "property_type",
	"notes":         "notes",
	"comments":      "notes",
}

// ImportCSV ingests contacts from a CSV reader. Rows missing a name or phone
// are discarded without failing the import; every kept row enters the store
// as a fresh pending contact with a zero call count.
func (s *ContactService) ImportCSV(ctx context.Context, r io.Reader, callListID *int64) (ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ImportSummary{}, CSVValidationError{Message: "csv file is empty"}
		}
		return ImportSummary{}, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[int]string)
	for i, col := range header {
		if field, ok := csvColumnAliases[strings.ToLower(strings.TrimSpace(col))]; ok {
			columns[i] = field
		}
	}
	if !headerCovers(columns, "name") || !headerCovers(columns, "phone") {
		return ImportSummary{}, CSVValidationError{Message: "csv must contain name and phone columns"}
	}

	var summary ImportSummary
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("read csv row: %w", err)
		}

		fields := make(map[string]string)
		for i, value := range row {
			if field, ok := columns[i]; ok {
				fields[field] = strings.Trim(strings.TrimSpace(value), `"`)
			}
		}

		if fields["name"] == "" || fields["phone"] == "" {
			summary.Skipped++
			continue
		}

		req := dto.CreateContactRequest{
			Name:       fields["name"],
			Phone:      fields["phone"],
			CallListID: callListID,
		}
		if v := fields["email"]; v != "" {
			req.Email = &v
		}
		if v := fields["company"]; v != "" {
			req.Company = &v
		}
		if v := fields["property_type"]; v != "" {
			req.PropertyType = &v
		}
		if v := fields["notes"]; v != "" {
			req.Notes = &v
		}

		if _, err := s.createContact(ctx, req, false); err != nil {
			return summary, fmt.Errorf("import row %d: %w", summary.Imported+summary.Skipped+2, err)
		}
		summary.Imported++
	}

	return summary, nil
}

var csvExportHeader = []string{"Name", "Phone", "Email", "Company", "Property Type", "Status", "Call Count", "Last Called", "Notes"}

// ExportCSV writes the full contact collection in the import-compatible layout.
func (s *ContactService) ExportCSV(ctx context.Context, w io.Writer) error {
	contacts, err := s.repo.List(ctx, dto.ContactFilter{})
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range contacts {
		row := []string{
			c.Name,
			c.Phone,
			deref(c.Email),
			deref(c.Company),
			deref(c.PropertyType),
			string(c.Status),
			strconv.Itoa(c.CallCount),
			formatTimePtr(c.LastCalled),
			deref(c.Notes),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func headerCovers(columns map[int]string, field string) bool {
	for _, mapped := range columns {
		if mapped == field {
			return true
		}
	}
	return false
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatTimePtr(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format(time.RFC3339)
}
