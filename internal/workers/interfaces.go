// Package workers provides the background jobs that keep a Broadcast session
// usable while the CLI watches quotes.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must return promptly and do its work in goroutines it owns. Stop
// blocks until those goroutines have exited and is safe to call on a worker
// that was never started.
//
// Example implementation:
//
//	type MyWorker struct{ job }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    w.start(ctx, func(ctx context.Context) { <-ctx.Done() })
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
