package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context) error

// Every runs task now and then on every tick until ctx is done. Errors are
// logged and do not stop the loop.
func Every(ctx context.Context, interval time.Duration, name string, logger *zap.Logger, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("task failed", zap.String("task", name), zap.Error(err))
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}

// Start runs Every in its own goroutine. The returned stop cancels it and
// waits for the task in flight to return.
func Start(ctx context.Context, interval time.Duration, name string, logger *zap.Logger, task Task) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		Every(ctx, interval, name, logger, task)
	}()
	return func() {
		cancel()
		wg.Wait()
	}
}
