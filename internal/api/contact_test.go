package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postContact(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.HandleContact(w, req)
	return w
}

func TestHandleContactSuccess(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	h, q := newTestHandler(&fakeChat{turn: successfulTurn()}, repo, mailer)

	w := postContact(t, h, `{"name":"Alice","email":"Alice@Example.COM","message":"I would like to discuss a role."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp contactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Message sent successfully!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if !strings.HasPrefix(resp.ID, "contact_") {
		t.Errorf("expected contact_ id, got %q", resp.ID)
	}
	if repo.contactCount() != 1 {
		t.Fatalf("expected one stored contact, got %d", repo.contactCount())
	}
	if got := repo.contacts[0].Email; got != "alice@example.com" {
		t.Errorf("expected lowercased email, got %q", got)
	}

	// Email delivery is queued, not inline: drain the queue, then check it went out.
	q.Close()
	if mailer.sentCount() != 1 {
		t.Fatalf("expected one notification sent, got %d", mailer.sentCount())
	}
	if mailer.sent[0].Name != "Alice" {
		t.Errorf("unexpected notification name: %q", mailer.sent[0].Name)
	}
}

func TestHandleContactValidation(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	h, q := newTestHandler(&fakeChat{turn: successfulTurn()}, repo, mailer)
	defer q.Close()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad email", `{"name":"Al","email":"not-an-email","message":"Hello there, interested."}`, "Valid email is required"},
		{"short name", `{"name":"A","email":"a@b.io","message":"Hello there, interested."}`, "Name must be at least 2 characters"},
		{"short message", `{"name":"Alice","email":"a@b.io","message":"hi"}`, "Message must be at least 10 characters"},
		{"all invalid", `{"name":"","email":"x","message":""}`, "Name must be at least 2 characters, Valid email is required, Message must be at least 10 characters"},
		{"malformed json", `{`, "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postContact(t, h, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("expected error containing %q, got %s", tt.want, w.Body.String())
			}
		})
	}

	if repo.contactCount() != 0 {
		t.Errorf("rejected submissions must not be stored, got %d", repo.contactCount())
	}
	if mailer.sentCount() != 0 {
		t.Errorf("rejected submissions must not trigger email, got %d", mailer.sentCount())
	}
}

func TestHandleContactStoreFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{contactErr: errors.New("disk full")}
	mailer := &fakeMailer{}
	h, q := newTestHandler(&fakeChat{turn: successfulTurn()}, repo, mailer)

	w := postContact(t, h, `{"name":"Alice","email":"a@b.io","message":"I would like to discuss a role."}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to send message. Please try again.") {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "disk full") {
		t.Error("internal error detail must not leak to the caller")
	}

	q.Close()
	if mailer.sentCount() != 0 {
		t.Error("failed store write must not trigger email")
	}
}

func TestHandleContactMailerFailureStaysHidden(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	mailer := &fakeMailer{fail: true}
	h, q := newTestHandler(&fakeChat{turn: successfulTurn()}, repo, mailer)

	w := postContact(t, h, `{"name":"Alice","email":"a@b.io","message":"I would like to discuss a role."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite mailer failure, got %d: %s", w.Code, w.Body.String())
	}
	if repo.contactCount() != 1 {
		t.Errorf("expected contact stored, got %d", repo.contactCount())
	}
	q.Close()
}
