package assistant

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// TranscriptEvent is one NDJSON line in a session transcript.
type TranscriptEvent struct {
	Timestamp string         `json:"ts"`
	SessionID string         `json:"session_id"`
	Role      string         `json:"role"`
	Intent    string         `json:"intent,omitempty"`
	Content   string         `json:"content"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// TranscriptLogger records chat transcripts off the request path.
type TranscriptLogger interface {
	Log(event TranscriptEvent)
	Close() error
}

// TranscriptConfig controls transcript logging.
type TranscriptConfig struct {
	Enabled   bool
	Dir       string
	QueueSize int
}

// NewTranscriptLogger creates a transcript logger. When disabled it returns
// a no-op implementation.
func NewTranscriptLogger(cfg TranscriptConfig) (TranscriptLogger, error) {
	if !cfg.Enabled {
		return noopTranscriptLogger{}, nil
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("transcript logger: dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("transcript logger: create dir: %w", err)
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1000
	}

	l := &fileTranscriptLogger{
		dir:    cfg.Dir,
		events: make(chan TranscriptEvent, queueSize),
	}
	l.wg.Add(1)
	go l.run()
	return l, nil
}

type noopTranscriptLogger struct{}

func (noopTranscriptLogger) Log(TranscriptEvent) {}
func (noopTranscriptLogger) Close() error        { return nil }

// fileTranscriptLogger appends events to one NDJSON file per session. The
// queue is bounded; under saturation events are dropped and counted rather
// than blocking the chat request.
type fileTranscriptLogger struct {
	dir     string
	events  chan TranscriptEvent
	wg      sync.WaitGroup
	dropped atomic.Int64

	// mu orders Log's send against Close's channel close.
	mu     sync.Mutex
	closed bool
}

// Log enqueues an event without blocking.
func (l *fileTranscriptLogger) Log(event TranscriptEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case l.events <- event:
	default:
		n := l.dropped.Add(1)
		slog.Warn("Transcript event dropped, queue full", "session_id", event.SessionID, "dropped_total", n)
	}
}

// Close stops accepting events and flushes the queue. Safe to call more
// than once and concurrently with Log.
func (l *fileTranscriptLogger) Close() error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.events)
	}
	l.mu.Unlock()
	l.wg.Wait()
	return nil
}

func (l *fileTranscriptLogger) run() {
	defer l.wg.Done()
	for event := range l.events {
		if err := l.append(event); err != nil {
			slog.Warn("Failed to write transcript event", "session_id", event.SessionID, "error", err)
		}
	}
}

func (l *fileTranscriptLogger) append(event TranscriptEvent) error {
	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal transcript event: %w", err)
	}

	path := filepath.Join(l.dir, sanitizeFilename(event.SessionID)+".ndjson")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open transcript file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Debug("failed to close transcript file", "path", path, "error", closeErr)
		}
	}()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write transcript line: %w", err)
	}
	return nil
}

// sanitizeFilename keeps session-derived filenames safe for the filesystem.
func sanitizeFilename(name string) string {
	if name == "" {
		return "unknown"
	}
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
