package assistant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rishabh-cloud/portfolio-api/internal/intent"
)

func TestLoadPersonaEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	p, err := LoadPersona("")
	if err != nil {
		t.Fatalf("LoadPersona failed: %v", err)
	}
	if p.SystemPrompt != defaultSystemPrompt {
		t.Error("expected default system prompt")
	}
	if len(p.SuggestionsFor(intent.Hiring)) != 3 {
		t.Error("expected default HIRING suggestions")
	}
}

func TestLoadPersonaOverlaysYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "persona.yaml")
	content := `
system_prompt: "You are a test assistant."
suggestions:
  HIRING:
    - "Custom hiring question"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write persona file: %v", err)
	}

	p, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("LoadPersona failed: %v", err)
	}
	if p.SystemPrompt != "You are a test assistant." {
		t.Errorf("system prompt not overridden: %q", p.SystemPrompt)
	}
	if got := p.SuggestionsFor(intent.Hiring); len(got) != 1 || got[0] != "Custom hiring question" {
		t.Errorf("HIRING suggestions not overridden: %v", got)
	}
	// Untouched tables keep their defaults.
	if got := p.SuggestionsFor(intent.Skills); len(got) != 3 {
		t.Errorf("SKILLS suggestions should keep defaults, got %v", got)
	}
}

func TestLoadPersonaRejectsUnknownIntent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "persona.yaml")
	content := `
suggestions:
  BOGUS:
    - "nope"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write persona file: %v", err)
	}
	if _, err := LoadPersona(path); err == nil {
		t.Fatal("expected error for unknown intent label")
	}
}

func TestSuggestionsForReturnsCopy(t *testing.T) {
	t.Parallel()

	p := DefaultPersona()
	a := p.SuggestionsFor(intent.General)
	a[0] = "mutated"
	b := p.SuggestionsFor(intent.General)
	if b[0] == "mutated" {
		t.Error("SuggestionsFor must return a copy")
	}
}
