package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingRefresher struct {
	count atomic.Int32
}

func (c *countingRefresher) Refresh(context.Context) error {
	c.count.Add(1)
	return nil
}

func TestRunRefreshesImmediately(t *testing.T) {
	refresher := &countingRefresher{}
	w := NewRefreshWorker("test", refresher, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for refresher.count.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no refresh within 2s")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}

	if got := refresher.count.Load(); got != 1 {
		t.Errorf("refresh count = %d, want 1", got)
	}
}

func TestRunTicksOnInterval(t *testing.T) {
	refresher := &countingRefresher{}
	w := NewRefreshWorker("test", refresher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)

	deadline := time.After(2 * time.Second)
	for refresher.count.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("refresh count = %d after 2s, want >= 3", refresher.count.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
}
