package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rishabh-cloud/portfolio-api/internal/domain"
	"github.com/rishabh-cloud/portfolio-api/internal/mail"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// HandleContact handles POST /api/contact. The store write is required for
// the response; the notification email is fire-and-forget and its failure
// never surfaces to the caller.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validateContact(req); len(errs) > 0 {
		Error(w, http.StatusBadRequest, strings.Join(errs, ", "))
		return
	}

	msg := &domain.ContactMessage{
		ID:        "contact_" + uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Message:   strings.TrimSpace(req.Message),
		Status:    domain.ContactStatusNew,
		CreatedAt: time.Now(),
	}

	if err := h.repo.SaveContact(r.Context(), msg); err != nil {
		slog.Error("Failed to save contact message", "error", err)
		Error(w, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	notification := mail.Notification{
		Name:        msg.Name,
		Email:       msg.Email,
		Message:     msg.Message,
		SubmittedAt: msg.CreatedAt,
	}
	h.tasks.Submit("send contact notification", func(ctx context.Context) error {
		return h.mailer.SendContactNotification(ctx, notification)
	})

	slog.Info("Contact message stored", "contact_id", msg.ID)

	JSON(w, http.StatusOK, contactResponse{
		Message: "Message sent successfully!",
		ID:      msg.ID,
	})
}

func validateContact(req contactRequest) []string {
	var errs []string
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs = append(errs, "Name must be at least 2 characters")
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		errs = append(errs, "Valid email is required")
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		errs = append(errs, "Message must be at least 10 characters")
	}
	return errs
}
