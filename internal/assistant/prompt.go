package assistant

import (
	"fmt"
	"strings"

	"github.com/rishabh-cloud/portfolio-api/internal/domain"
	"github.com/rishabh-cloud/portfolio-api/internal/intent"
)

// BuildPrompt merges the persona's instruction block, optional intent and
// UI-section directives, the trailing exchanges and the current question
// into one prompt string. When intent is GENERAL and no section is set the
// output is exactly the instruction block plus conversation.
func BuildPrompt(p *Persona, message string, history []domain.Exchange, label intent.Intent, currentSection string) string {
	var b strings.Builder
	b.WriteString(p.SystemPrompt)

	if label != intent.General {
		fmt.Fprintf(&b, "\n\nUser Intent: %s - Focus your response on this aspect.", label)
	}
	if currentSection != "" {
		fmt.Fprintf(&b, "\n\nUser is currently viewing: %s", currentSection)
	}

	b.WriteString("\n\nPrevious Conversation:\n")
	b.WriteString(renderHistory(history))

	fmt.Fprintf(&b, "\n\nCurrent Question: %s", message)
	b.WriteString("\n\nProvide a helpful, engaging response with specific examples and metrics. Include relevant actions and follow-up suggestions.")

	return b.String()
}

// renderHistory formats exchanges as alternating Human/Assistant lines in
// chronological order, most recent last.
func renderHistory(history []domain.Exchange) string {
	lines := make([]string, 0, len(history))
	for _, ex := range history {
		lines = append(lines, fmt.Sprintf("Human: %s\nAssistant: %s", ex.UserMessage, ex.BotResponse))
	}
	return strings.Join(lines, "\n\n")
}
