package ports

import (
	"context"
)

// Job is a deferred invocation descriptor handed to the background
// worker: a job type plus its serializable arguments.
type Job struct {
	Type string
	Args map[string]string
}

// JobDispatcher enqueues jobs for asynchronous execution. The core only
// depends on the enqueue capability, not the runner's internals; dispatch
// is fire-and-forget.
type JobDispatcher interface {
	Enqueue(ctx context.Context, job Job) error
}
