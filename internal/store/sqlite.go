package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rishabh-cloud/portfolio-api/internal/domain"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS sessions (
		session_id TEXT PRIMARY KEY,
		history_json TEXT NOT NULL,
		last_intent TEXT,
		message_count INTEGER NOT NULL DEFAULT 0,
		last_updated INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);

	CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS visit_counters (
		path TEXT PRIMARY KEY,
		visit_count INTEGER NOT NULL DEFAULT 0,
		last_visit INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetSession retrieves a chat session by identifier. Expired records are
// treated as absent; the sweep worker deletes them eventually.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT session_id, history_json, last_intent, message_count, last_updated, expires_at
		FROM sessions WHERE session_id = ?`

	row := s.db.QueryRowContext(ctx, query, sessionID)

	var session domain.Session
	var historyJSON string
	var lastIntent sql.NullString
	var lastUpdated, expiresAt int64

	err := row.Scan(
		&session.SessionID, &historyJSON, &lastIntent,
		&session.MessageCount, &lastUpdated, &expiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session row: %w", err)
	}

	session.LastIntent = lastIntent.String
	session.LastUpdated = time.Unix(lastUpdated, 0)
	session.ExpiresAt = time.Unix(expiresAt, 0)

	if session.Expired(time.Now()) {
		return nil, nil
	}

	if err := json.Unmarshal([]byte(historyJSON), &session.History); err != nil {
		return nil, fmt.Errorf("decode session history: %w", err)
	}

	return &session, nil
}

// PutSession fully overwrites the session record.
func (s *SQLiteStore) PutSession(ctx context.Context, session *domain.Session) error {
	historyJSON, err := json.Marshal(session.History)
	if err != nil {
		return fmt.Errorf("encode session history: %w", err)
	}

	query := `
	INSERT INTO sessions (session_id, history_json, last_intent, message_count, last_updated, expires_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(session_id) DO UPDATE SET
		history_json = excluded.history_json,
		last_intent = excluded.last_intent,
		message_count = excluded.message_count,
		last_updated = excluded.last_updated,
		expires_at = excluded.expires_at`

	var lastIntent interface{}
	if session.LastIntent != "" {
		lastIntent = session.LastIntent
	}

	_, err = s.db.ExecContext(ctx, query,
		session.SessionID, string(historyJSON), lastIntent,
		session.MessageCount, session.LastUpdated.Unix(), session.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions whose expiry has elapsed.
func (s *SQLiteStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < ?`
	result, err := s.db.ExecContext(ctx, query, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return result.RowsAffected()
}

// SaveContact stores a contact form submission.
func (s *SQLiteStore) SaveContact(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
	INSERT INTO contacts (id, name, email, message, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Message, msg.Status, msg.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// IncrementVisit atomically adds one to the counter and returns the total.
// The upsert and the read-back run in one transaction so concurrent
// requests each observe a distinct count.
func (s *SQLiteStore) IncrementVisit(ctx context.Context, path string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin visit transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO visit_counters (path, visit_count, last_visit)
	VALUES (?, 1, ?)
	ON CONFLICT(path) DO UPDATE SET
		visit_count = visit_count + 1,
		last_visit = excluded.last_visit`

	if _, err := tx.ExecContext(ctx, query, path, time.Now().Unix()); err != nil {
		return 0, fmt.Errorf("increment visit count: %w", err)
	}

	var count int64
	row := tx.QueryRowContext(ctx, `SELECT visit_count FROM visit_counters WHERE path = ?`, path)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("read visit count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit visit transaction: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
