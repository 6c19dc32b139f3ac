package worker

import (
	"context"
	"log/slog"
	"time"
)

// Refresher is a unit of periodic work, such as the catalog refresh.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshWorker runs a Refresher on a fixed interval.
type RefreshWorker struct {
	name      string
	refresher Refresher
	interval  time.Duration
}

// NewRefreshWorker creates a worker that runs the refresher every interval.
// The name only appears in logs.
func NewRefreshWorker(name string, refresher Refresher, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		name:      name,
		refresher: refresher,
		interval:  interval,
	}
}

// Run starts the worker loop with an immediate first refresh. It blocks until
// the context is cancelled.
func (w *RefreshWorker) Run(ctx context.Context) {
	slog.Info("worker starting", "worker", w.name)

	if err := w.refresher.Refresh(ctx); err != nil {
		slog.Error("initial refresh failed", "worker", w.name, "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker shutting down", "worker", w.name)
			return
		case <-ticker.C:
			if err := w.refresher.Refresh(ctx); err != nil {
				slog.Error("refresh failed", "worker", w.name, "error", err)
			}
		}
	}
}
