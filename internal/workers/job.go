package workers

import (
	"context"
	"sync"
)

// job owns at most one background goroutine at a time.
type job struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// start stops any previously running loop, then runs loop in a new goroutine
// with a context that is cancelled by stop or by ctx.
func (j *job) start(ctx context.Context, loop func(ctx context.Context)) {
	j.stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		loop(jobCtx)
	}()
}

// stop cancels the running loop and blocks until it has exited. It is a
// no-op when nothing is running.
func (j *job) stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
