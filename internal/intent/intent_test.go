package intent

import (
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    Intent
	}{
		{"Are you open to a new job?", Hiring},
		{"How did you build the EKS migration?", Technical},
		{"Tell me about your biggest achievement", Experience},
		// "experience" appears in the message but "how" matches TECHNICAL
		// first in enumeration order.
		{"how much experience do you have", Technical},
		{"Tell me about your AWS experience", Experience},
		{"What AWS services do you know?", Skills},
		{"Can we schedule a meeting?", Contact},
		{"hello there", General},
		{"", General},
		{"xyzzy plugh", General},
		{"HIRE me a CANDIDATE", Hiring},
	}

	for _, tt := range tests {
		if got := Classify(tt.message); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.message, got, tt.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	msg := "what technical role would suit your experience"
	first := Classify(msg)
	for i := 0; i < 50; i++ {
		if got := Classify(msg); got != first {
			t.Fatalf("classification changed between calls: %s vs %s", first, got)
		}
	}
}

func TestClassifyAlwaysReturnsKnownLabel(t *testing.T) {
	t.Parallel()

	for _, msg := range []string{"", "?!?", "schedule hire how", "\x00\xff"} {
		got := Classify(msg)
		if !Valid(string(got)) {
			t.Errorf("Classify(%q) returned unknown label %q", msg, got)
		}
	}
}
