// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/rishabh-cloud/portfolio-api/internal/domain"
)

// Repository defines the interface for persisting sessions, contact
// messages and visit counters.
type Repository interface {
	// GetSession retrieves a chat session by identifier. Returns nil when
	// the session does not exist or its TTL has elapsed (passive expiry).
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// PutSession fully overwrites the session record. There is no partial
	// patch; concurrent writers to the same session are last-write-wins.
	PutSession(ctx context.Context, session *domain.Session) error

	// DeleteExpiredSessions removes sessions whose expiry has elapsed and
	// returns the number of rows deleted.
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// SaveContact stores a contact form submission.
	SaveContact(ctx context.Context, msg *domain.ContactMessage) error

	// IncrementVisit atomically adds one to the counter for the given path
	// and returns the new total.
	IncrementVisit(ctx context.Context, path string) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
