//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishabh-cloud/portfolio-api/internal/assistant"
	"github.com/rishabh-cloud/portfolio-api/internal/config"
	"github.com/rishabh-cloud/portfolio-api/internal/mail"
	"github.com/rishabh-cloud/portfolio-api/internal/store"
	"github.com/rishabh-cloud/portfolio-api/internal/task"
)

// maxRequestBodySize caps request bodies well above any valid payload (64KB).
const maxRequestBodySize = 64 << 10

// ChatService is the chat orchestration the handler depends on.
type ChatService interface {
	Chat(ctx context.Context, message, sessionID, currentSection string) (*assistant.Turn, error)
	ErrorSuggestions() []string
}

// Handler serves the portfolio API endpoints.
type Handler struct {
	chat    ChatService
	repo    store.Repository
	mailer  mail.Mailer
	tasks   *task.Queue
	limiter *RateLimiter
	cfg     config.ChatConfig
}

// NewHandler creates a handler with its collaborators.
func NewHandler(chat ChatService, repo store.Repository, mailer mail.Mailer, tasks *task.Queue, cfg config.ChatConfig) *Handler {
	return &Handler{
		chat:    chat,
		repo:    repo,
		mailer:  mailer,
		tasks:   tasks,
		limiter: NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		cfg:     cfg,
	}
}

// RegisterRoutes registers the public API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.HandleChat)
		r.Post("/contact", h.HandleContact)
		r.Get("/visits", h.HandleVisits)
		r.Post("/visits", h.HandleVisits)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
