// Package intent provides coarse keyword-based classification of visitor
// messages. Labels bias default suggestions and prompt framing; the
// classifier is deterministic and never fails.
package intent

import (
	"strings"
)

// Intent is one label from the fixed closed set.
type Intent string

const (
	Hiring     Intent = "HIRING"
	Technical  Intent = "TECHNICAL"
	Experience Intent = "EXPERIENCE"
	Skills     Intent = "SKILLS"
	Contact    Intent = "CONTACT"
	General    Intent = "GENERAL"
)

// All lists every label in classification order. The first label whose
// keyword list matches wins, so order matters.
var All = []Intent{Hiring, Technical, Experience, Skills, Contact, General}

var keywords = map[Intent][]string{
	Hiring:     {"hire", "job", "position", "role", "opportunity", "recruit", "candidate"},
	Technical:  {"how", "technical", "architecture", "implement", "build", "design", "code"},
	Experience: {"experience", "worked", "project", "achievement", "accomplishment"},
	Skills:     {"skill", "technology", "tool", "know", "proficient", "expert"},
	Contact:    {"contact", "reach", "email", "schedule", "meeting", "call", "discuss"},
	General:    {"hello", "hi", "hey", "about", "who", "what"},
}

// Classify returns the first label in enumeration order with a keyword
// contained in the message (case-insensitive substring), or General when
// nothing matches.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, label := range All {
		for _, kw := range keywords[label] {
			if strings.Contains(lower, kw) {
				return label
			}
		}
	}
	return General
}

// Valid reports whether s is a recognized label.
func Valid(s string) bool {
	for _, label := range All {
		if string(label) == s {
			return true
		}
	}
	return false
}
