package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestEveryRunsImmediatelyAndRepeats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int64
	done := make(chan struct{})

	go func() {
		defer close(done)
		Every(ctx, 5*time.Millisecond, "test", zaptest.NewLogger(t), func(context.Context) error {
			if runs.Add(1) >= 3 {
				cancel()
			}
			return errors.New("keeps going")
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Every did not stop after cancel")
	}
	if n := runs.Load(); n < 3 {
		t.Fatalf("runs = %d", n)
	}
}

func TestStopWaitsForRunningTask(t *testing.T) {
	started := make(chan struct{})
	var finished, runs atomic.Int64

	stop := Start(context.Background(), time.Hour, "test", zaptest.NewLogger(t), func(ctx context.Context) error {
		runs.Add(1)
		close(started)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		finished.Store(1)
		return ctx.Err()
	})

	<-started
	stop()
	if finished.Load() != 1 {
		t.Fatal("stop returned before the running task finished")
	}
	if n := runs.Load(); n != 1 {
		t.Fatalf("runs = %d", n)
	}
}
