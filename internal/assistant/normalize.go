package assistant

import (
	"encoding/json"
	"strings"

	"github.com/rishabh-cloud/portfolio-api/internal/domain"
	"github.com/rishabh-cloud/portfolio-api/internal/intent"
)

// Normalize interprets the model's raw text as a structured reply. It is
// total: malformed output is not an error but the documented fallback, with
// the whole raw text as the message and the intent-keyed default
// suggestions. The second return value reports whether structured parsing
// succeeded.
func Normalize(raw string, label intent.Intent, p *Persona) (domain.Reply, bool) {
	var parsed struct {
		Message     string          `json:"message"`
		Actions     []domain.Action `json:"actions"`
		Suggestions []string        `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return domain.Reply{
			Message:     raw,
			Actions:     []domain.Action{},
			Suggestions: p.SuggestionsFor(label),
		}, false
	}

	reply := domain.Reply{
		Message:     parsed.Message,
		Actions:     parsed.Actions,
		Suggestions: parsed.Suggestions,
	}
	if reply.Message == "" {
		reply.Message = raw
	}
	if reply.Actions == nil {
		reply.Actions = []domain.Action{}
	}
	if len(reply.Suggestions) == 0 {
		reply.Suggestions = p.SuggestionsFor(label)
	}
	return reply, true
}
