package store

import (
	"context"
	"log/slog"
	"time"
)

const defaultSweepInterval = 10 * time.Minute

// StartSweeper runs a background goroutine that periodically deletes
// expired session rows. Reads already treat expired rows as absent, so the
// sweeper only reclaims space. It stops when ctx is canceled.
func StartSweeper(ctx context.Context, repo Repository, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session sweeper started", "interval", interval)

		for {
			select {
			case <-ticker.C:
				deleted, err := repo.DeleteExpiredSessions(ctx)
				if err != nil {
					slog.Error("Session sweeper failed", "error", err)
					continue
				}
				if deleted > 0 {
					slog.Info("Session sweeper removed expired sessions", "count", deleted)
				}
			case <-ctx.Done():
				slog.Info("Session sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}
