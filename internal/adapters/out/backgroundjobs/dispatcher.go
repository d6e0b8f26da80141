// Package backgroundjobs runs enqueued jobs inside the process. It stands
// in for an external job runner: handlers are registered per job type and
// executed on their own goroutine, so dispatch stays fire-and-forget for
// the caller.
package backgroundjobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"shootdesk/internal/core/ports"
	"shootdesk/internal/pkg/errs"
)

// Handler executes one job type. Args carry the serializable payload the
// enqueuer attached to the job.
type Handler func(ctx context.Context, args map[string]string) error

// InProcessDispatcher executes jobs asynchronously on goroutines. A job
// enqueued for an unregistered type is rejected synchronously; handler
// failures are logged, not returned, since the caller has moved on.
type InProcessDispatcher struct {
	logger *slog.Logger

	mu       sync.RWMutex
	handlers map[string]Handler
	closed   bool
	inflight sync.WaitGroup
}

// NewInProcessDispatcher creates a dispatcher with no registered handlers.
func NewInProcessDispatcher(logger *slog.Logger) *InProcessDispatcher {
	return &InProcessDispatcher{
		logger:   logger.With("component", "backgroundjobs"),
		handlers: make(map[string]Handler),
	}
}

// Register binds a handler to a job type. Registering the same type twice
// is a programming error.
func (d *InProcessDispatcher) Register(jobType string, handler Handler) error {
	if jobType == "" {
		return errs.NewValueIsRequiredError("jobType")
	}
	if handler == nil {
		return errs.NewValueIsRequiredError("handler")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.handlers[jobType]; exists {
		return errs.NewConflictError("jobType", jobType)
	}
	d.handlers[jobType] = handler
	return nil
}

// Enqueue schedules the job for asynchronous execution. The job runs on
// its own goroutine detached from the caller's context: the request that
// enqueued it may finish long before the job does.
func (d *InProcessDispatcher) Enqueue(ctx context.Context, job ports.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.RLock()
	handler, ok := d.handlers[job.Type]
	closed := d.closed
	d.mu.RUnlock()

	if closed {
		return errs.NewInvalidOperationErrorWithCause("enqueue job",
			fmt.Errorf("dispatcher is closed"))
	}
	if !ok {
		return errs.NewObjectNotFoundError("jobType", job.Type)
	}

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		if err := handler(context.Background(), job.Args); err != nil {
			d.logger.Error("job failed", "type", job.Type, "error", err)
			return
		}
		d.logger.Debug("job finished", "type", job.Type)
	}()
	return nil
}

// Close rejects further jobs and waits for the in-flight ones to finish.
func (d *InProcessDispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.inflight.Wait()
}
