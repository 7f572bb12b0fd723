package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/rishabh-cloud/portfolio-api/internal/domain"
)

const chatErrorMessage = "I apologize, but I encountered a technical issue. Please try again."

type chatRequest struct {
	Message   string       `json:"message"`
	SessionID string       `json:"sessionId"`
	Context   *chatContext `json:"context"`
}

type chatContext struct {
	CurrentSection string `json:"currentSection"`
}

type chatResponse struct {
	Response    string          `json:"response"`
	Actions     []domain.Action `json:"actions"`
	Suggestions []string        `json:"suggestions"`
	SessionID   string          `json:"sessionId"`
	Intent      string          `json:"intent,omitempty"`
}

type chatErrorResponse struct {
	Error       string          `json:"error"`
	Response    string          `json:"response"`
	Actions     []domain.Action `json:"actions"`
	Suggestions []string        `json:"suggestions"`
}

// HandleChat handles POST /api/chat. Validation failures never reach the
// model or the session store; error responses keep the widget usable with a
// friendly message and safe generic suggestions.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientKey(r)) {
		h.chatError(w, http.StatusTooManyRequests, "Too many requests, please slow down")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.chatError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.chatError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if utf8.RuneCountInString(req.Message) > h.cfg.MaxMessageChars {
		h.chatError(w, http.StatusBadRequest,
			fmt.Sprintf("Message too long (max %d characters)", h.cfg.MaxMessageChars))
		return
	}

	var currentSection string
	if req.Context != nil {
		currentSection = req.Context.CurrentSection
	}

	turn, err := h.chat.Chat(r.Context(), req.Message, req.SessionID, currentSection)
	if err != nil {
		slog.Error("Chat turn failed", "session_id", req.SessionID, "error", err)
		h.chatError(w, http.StatusInternalServerError, chatErrorMessage)
		return
	}

	slog.Info("Chat turn completed",
		"session_id", turn.SessionID,
		"intent", turn.Intent,
		"parsed", turn.Parsed,
		"message_length", len(req.Message),
	)

	JSON(w, http.StatusOK, chatResponse{
		Response:    turn.Reply.Message,
		Actions:     turn.Reply.Actions,
		Suggestions: turn.Reply.Suggestions,
		SessionID:   turn.SessionID,
		Intent:      string(turn.Intent),
	})
}

// chatError writes an error response carrying the same shape the widget
// renders for success, so the UI can show the message and fallbacks.
func (h *Handler) chatError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, chatErrorResponse{
		Error:       message,
		Response:    message,
		Actions:     []domain.Action{},
		Suggestions: h.chat.ErrorSuggestions(),
	})
}

// clientKey identifies the caller for rate limiting. chi's RealIP
// middleware rewrites RemoteAddr from forwarding headers upstream.
func clientKey(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}
