package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

// TemplateKind separates call scripts from follow-up text messages.
type TemplateKind string

const (
	KindScript TemplateKind = "script"
	KindText   TemplateKind = "text"
)

// Template is a reusable script or text with contact placeholders.
type Template struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      TemplateKind `json:"kind"`
	Content   string       `json:"content"`
	IsDefault bool         `json:"is_default"`
}

var (
	// ErrTemplateNotFound is returned when no template matches the id.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateProtected is returned when deleting a seeded default.
	ErrTemplateProtected = errors.New("default templates cannot be deleted")
)

// TemplateService holds the session's script and text templates. The seeded
// defaults are always present; custom templates live alongside them.
type TemplateService struct {
	mu        sync.Mutex
	templates []Template
}

// NewTemplateService seeds the default script and text templates.
func NewTemplateService() *TemplateService {
	return &TemplateService{templates: append([]Template{}, defaultTemplates...)}
}

// ListTemplates returns templates, optionally narrowed to one kind.
func (s *TemplateService) ListTemplates(kind TemplateKind) []Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Template
	for _, t := range s.templates {
		if kind != "" && t.Kind != kind {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GetTemplate fetches a template by id.
func (s *TemplateService) GetTemplate(id string) (*Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.templates {
		if t.ID == id {
			copied := t
			return &copied, nil
		}
	}
	return nil, ErrTemplateNotFound
}

// CreateTemplate adds a custom template.
func (s *TemplateService) CreateTemplate(name string, kind TemplateKind, content string) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(content) == "" {
		return nil, errors.New("name and content are required")
	}
	if kind != KindScript && kind != KindText {
		return nil, errors.New("kind must be script or text")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Template{ID: uuid.NewString(), Name: name, Kind: kind, Content: content}
	s.templates = append(s.templates, t)
	return &t, nil
}

// UpdateTemplate mutates name or content of an existing template.
func (s *TemplateService) UpdateTemplate(id string, name, content *string) (*Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID != id {
			continue
		}
		if name != nil {
			trimmed := strings.TrimSpace(*name)
			if trimmed == "" {
				return nil, errors.New("name cannot be empty")
			}
			t.Name = trimmed
		}
		if content != nil {
			if strings.TrimSpace(*content) == "" {
				return nil, errors.New("content cannot be empty")
			}
			t.Content = *content
		}
		s.templates[i] = t
		copied := t
		return &copied, nil
	}
	return nil, ErrTemplateNotFound
}

// DeleteTemplate removes a custom template; seeded defaults stay.
func (s *TemplateService) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID != id {
			continue
		}
		if t.IsDefault {
			return ErrTemplateProtected
		}
		s.templates = append(s.templates[:i], s.templates[i+1:]...)
		return nil
	}
	return ErrTemplateNotFound
}

// Render substitutes the contact's details into the template placeholders.
func (s *TemplateService) Render(id string, contact entity.Contact) (string, error) {
	t, err := s.GetTemplate(id)
	if err != nil {
		return "", err
	}

	replacer := strings.NewReplacer(
		"{name}", contact.Name,
		"{company}", derefOr(contact.Company, "your company"),
		"{propertyType}", derefOr(contact.PropertyType, "property"),
	)
	return replacer.Replace(t.Content), nil
}

func derefOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
