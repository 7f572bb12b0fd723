package assistant

import (
	"strings"
	"testing"

	"github.com/rishabh-cloud/portfolio-api/internal/intent"
)

func TestNormalizePlainTextFallback(t *testing.T) {
	t.Parallel()

	p := DefaultPersona()
	raw := "Hello, nice to meet you"
	reply, parsed := Normalize(raw, intent.General, p)

	if parsed {
		t.Fatal("plain text should not report as parsed")
	}
	if reply.Message != raw {
		t.Errorf("expected message %q, got %q", raw, reply.Message)
	}
	if len(reply.Actions) != 0 || reply.Actions == nil {
		t.Errorf("expected empty non-nil actions, got %#v", reply.Actions)
	}
	want := p.SuggestionsFor(intent.General)
	if len(reply.Suggestions) != len(want) || reply.Suggestions[0] != want[0] {
		t.Errorf("expected GENERAL default suggestions, got %v", reply.Suggestions)
	}
}

func TestNormalizeStructuredReply(t *testing.T) {
	t.Parallel()

	raw := `{"message":"I led the EKS migration.","actions":[{"type":"show_projects","data":{}}],"suggestions":["How big was the team?"]}`
	reply, parsed := Normalize(raw, intent.Technical, DefaultPersona())

	if !parsed {
		t.Fatal("expected structured parse to succeed")
	}
	if reply.Message != "I led the EKS migration." {
		t.Errorf("unexpected message: %q", reply.Message)
	}
	if len(reply.Actions) != 1 || reply.Actions[0].Type != "show_projects" {
		t.Errorf("unexpected actions: %#v", reply.Actions)
	}
	if len(reply.Suggestions) != 1 || reply.Suggestions[0] != "How big was the team?" {
		t.Errorf("unexpected suggestions: %v", reply.Suggestions)
	}
}

func TestNormalizeDefaultsMissingFields(t *testing.T) {
	t.Parallel()

	p := DefaultPersona()
	raw := `{"actions":null}`
	reply, parsed := Normalize(raw, intent.Hiring, p)

	if !parsed {
		t.Fatal("valid JSON object should parse")
	}
	if reply.Message != raw {
		t.Errorf("empty message should default to raw text, got %q", reply.Message)
	}
	if reply.Actions == nil || len(reply.Actions) != 0 {
		t.Errorf("expected empty actions, got %#v", reply.Actions)
	}
	if got, want := reply.Suggestions, p.SuggestionsFor(intent.Hiring); got[0] != want[0] {
		t.Errorf("expected HIRING defaults, got %v", got)
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	t.Parallel()

	p := DefaultPersona()
	inputs := []string{
		"",
		"   ",
		"not json at all",
		"{broken json",
		`"just a string"`,
		"12345",
		"null",
		`[{"message":"array"}]`,
		strings.Repeat("x", 10000),
	}
	for _, raw := range inputs {
		reply, _ := Normalize(raw, intent.General, p)
		if reply.Actions == nil {
			t.Errorf("Normalize(%.20q): nil actions", raw)
		}
		if reply.Suggestions == nil || len(reply.Suggestions) == 0 {
			t.Errorf("Normalize(%.20q): missing suggestions", raw)
		}
	}
}
