// Package domain contains core domain types for the portfolio backend.
package domain

import (
	"time"
)

// Exchange is one user message paired with the assistant's reply text.
// Exchanges are created inside a single request, appended to the session
// history, and never mutated afterwards.
type Exchange struct {
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Intent      string    `json:"intent,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Session is a client-scoped conversation with a bounded trailing history.
// LastIntent, MessageCount and LastUpdated are informational summary fields;
// correctness only depends on SessionID, History and ExpiresAt.
type Session struct {
	SessionID    string     `json:"sessionId"`
	History      []Exchange `json:"history"`
	LastIntent   string     `json:"lastIntent,omitempty"`
	MessageCount int        `json:"messageCount"`
	LastUpdated  time.Time  `json:"lastUpdated"`
	ExpiresAt    time.Time  `json:"expiresAt"`
}

// NewSession creates an empty session with the given identifier and TTL.
func NewSession(sessionID string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		SessionID:   sessionID,
		LastUpdated: now,
		ExpiresAt:   now.Add(ttl),
	}
}

// Append records an exchange and trims the history to the last bound entries,
// oldest dropped first. MessageCount keeps counting past the bound.
func (s *Session) Append(ex Exchange, bound int) {
	s.History = append(s.History, ex)
	if bound > 0 && len(s.History) > bound {
		s.History = s.History[len(s.History)-bound:]
	}
	s.LastIntent = ex.Intent
	s.MessageCount++
	s.LastUpdated = ex.Timestamp
}

// Recent returns the trailing n exchanges in chronological order.
func (s *Session) Recent(n int) []Exchange {
	if n >= len(s.History) {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// Expired reports whether the session's TTL has elapsed at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Touch extends the session's expiry and refreshes LastUpdated.
func (s *Session) Touch(ttl time.Duration) {
	now := time.Now()
	s.LastUpdated = now
	s.ExpiresAt = now.Add(ttl)
}
