package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

func TestTemplateService_SeedsDefaults(t *testing.T) {
	svc := NewTemplateService()

	all := svc.ListTemplates("")
	if len(all) == 0 {
		t.Fatal("expected seeded default templates")
	}
	for _, tmpl := range all {
		if !tmpl.IsDefault {
			t.Fatalf("seeded template %q should be marked default", tmpl.Name)
		}
	}

	scripts := svc.ListTemplates(KindScript)
	texts := svc.ListTemplates(KindText)
	if len(scripts) == 0 || len(texts) == 0 {
		t.Fatalf("expected both kinds seeded, got %d scripts and %d texts", len(scripts), len(texts))
	}
	if len(scripts)+len(texts) != len(all) {
		t.Fatal("kind filter should partition the templates")
	}
}

func TestTemplateService_CreateValidation(t *testing.T) {
	svc := NewTemplateService()

	if _, err := svc.CreateTemplate("", KindScript, "hello"); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := svc.CreateTemplate("Intro", KindScript, "  "); err == nil {
		t.Fatal("expected error for empty content")
	}
	if _, err := svc.CreateTemplate("Intro", "voicemail", "hello"); err == nil {
		t.Fatal("expected error for unknown kind")
	}

	created, err := svc.CreateTemplate("Intro", KindText, "Hi {name}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.IsDefault {
		t.Fatalf("custom template malformed: %+v", created)
	}
}

func TestTemplateService_UpdateAndDelete(t *testing.T) {
	svc := NewTemplateService()

	created, err := svc.CreateTemplate("Intro", KindText, "Hi {name}")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Opener"
	updated, err := svc.UpdateTemplate(created.ID, &newName, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Opener" || updated.Content != "Hi {name}" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := svc.UpdateTemplate("missing", &newName, nil); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := svc.DeleteTemplate(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetTemplate(created.ID); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected template gone, got %v", err)
	}
}

func TestTemplateService_DefaultsAreProtected(t *testing.T) {
	svc := NewTemplateService()

	defaults := svc.ListTemplates("")
	if err := svc.DeleteTemplate(defaults[0].ID); !errors.Is(err, ErrTemplateProtected) {
		t.Fatalf("expected protected error, got %v", err)
	}
}

func TestTemplateService_Render(t *testing.T) {
	svc := NewTemplateService()

	created, err := svc.CreateTemplate("Pitch", KindScript, "Hi {name}, calling about the {propertyType} at {company}.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	company := "Acme Realty"
	propertyType := "office building"
	rendered, err := svc.Render(created.ID, entity.Contact{Name: "Jane", Company: &company, PropertyType: &propertyType})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rendered != "Hi Jane, calling about the office building at Acme Realty." {
		t.Fatalf("unexpected render: %q", rendered)
	}
}

func TestTemplateService_RenderFallbacks(t *testing.T) {
	svc := NewTemplateService()

	created, err := svc.CreateTemplate("Pitch", KindScript, "{name} / {company} / {propertyType}")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rendered, err := svc.Render(created.ID, entity.Contact{Name: "Jane"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(rendered, "your company") || !strings.Contains(rendered, "property") {
		t.Fatalf("expected placeholder fallbacks, got %q", rendered)
	}

	if _, err := svc.Render("missing", entity.Contact{Name: "Jane"}); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
