package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rishabh-cloud/portfolio-api/internal/domain"
	"github.com/rishabh-cloud/portfolio-api/internal/intent"
	"github.com/rishabh-cloud/portfolio-api/internal/store"
	"github.com/rishabh-cloud/portfolio-api/internal/task"
)

// Generator is the hosted language model collaborator. Implementations make
// exactly one model call per invocation and do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options tunes history and prompt windows. PromptWindow caps how many
// trailing exchanges are rendered into the prompt; HistoryWindow bounds
// what is persisted.
type Options struct {
	HistoryWindow int
	PromptWindow  int
	SessionTTL    time.Duration
}

// Turn is the outcome of one chat exchange.
type Turn struct {
	SessionID string
	Intent    intent.Intent
	Reply     domain.Reply
	Parsed    bool
}

// Service orchestrates one chat turn: classify, load history, assemble the
// prompt, call the model, normalize, persist best-effort.
type Service struct {
	gen        Generator
	repo       store.Repository
	persona    *Persona
	opts       Options
	tasks      *task.Queue
	transcript TranscriptLogger
}

// NewService creates a chat service. transcript may be nil to disable
// transcript logging.
func NewService(gen Generator, repo store.Repository, persona *Persona, opts Options, tasks *task.Queue, transcript TranscriptLogger) *Service {
	if transcript == nil {
		transcript = noopTranscriptLogger{}
	}
	return &Service{
		gen:        gen,
		repo:       repo,
		persona:    persona,
		opts:       opts,
		tasks:      tasks,
		transcript: transcript,
	}
}

// NewSessionID generates an opaque session identifier.
func NewSessionID() string {
	return "session_" + uuid.NewString()
}

// ErrorSuggestions returns the safe generic follow-ups used on failure
// responses so the widget stays usable.
func (s *Service) ErrorSuggestions() []string {
	out := make([]string, len(s.persona.ErrorSuggestions))
	copy(out, s.persona.ErrorSuggestions)
	return out
}

// Chat runs one turn. The message must already be validated by the caller.
// An empty sessionID starts a new session. The updated history is persisted
// fire-and-forget: a store failure after a successful model call is logged
// by the task queue and never surfaces here.
func (s *Service) Chat(ctx context.Context, message, sessionID, currentSection string) (*Turn, error) {
	label := intent.Classify(message)

	var sess *domain.Session
	if sessionID == "" {
		sessionID = NewSessionID()
	} else {
		loaded, err := s.repo.GetSession(ctx, sessionID)
		if err != nil {
			// Degrade to an empty history rather than failing the turn.
			slog.Warn("Failed to load session history", "session_id", sessionID, "error", err)
		} else {
			sess = loaded
		}
	}
	if sess == nil {
		sess = domain.NewSession(sessionID, s.opts.SessionTTL)
	}

	prompt := BuildPrompt(s.persona, message, sess.Recent(s.opts.PromptWindow), label, currentSection)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	reply, parsed := Normalize(raw, label, s.persona)

	now := time.Now()
	sess.Append(domain.Exchange{
		UserMessage: message,
		BotResponse: reply.Message,
		Intent:      string(label),
		Timestamp:   now,
	}, s.opts.HistoryWindow)
	sess.Touch(s.opts.SessionTTL)

	// Exchanges only reach the history after a successful model call; the
	// write itself is best-effort and must not delay the response.
	snapshot := *sess
	snapshot.History = append([]domain.Exchange(nil), sess.History...)
	s.tasks.Submit("persist chat history", func(ctx context.Context) error {
		return s.repo.PutSession(ctx, &snapshot)
	})

	ts := now.UTC().Format(time.RFC3339Nano)
	s.transcript.Log(TranscriptEvent{
		Timestamp: ts,
		SessionID: sessionID,
		Role:      "user",
		Intent:    string(label),
		Content:   message,
	})
	s.transcript.Log(TranscriptEvent{
		Timestamp: ts,
		SessionID: sessionID,
		Role:      "assistant",
		Intent:    string(label),
		Content:   reply.Message,
		Meta:      map[string]any{"parsed": parsed, "actions": len(reply.Actions)},
	})

	return &Turn{
		SessionID: sessionID,
		Intent:    label,
		Reply:     reply,
		Parsed:    parsed,
	}, nil
}
