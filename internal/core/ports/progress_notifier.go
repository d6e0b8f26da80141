package ports

import (
	"shootdesk/internal/core/domain/model/kernel"
)

// UploadEvent describes one step of an upload session's life: bytes
// received so far, completion, or failure.
type UploadEvent struct {
	SessionID     kernel.UUID
	ReceivedBytes int64
	TotalBytes    int64
	Completed     bool
	Failed        bool
	Reason        string
}

// ProgressNotifier pushes upload progress events towards the client's
// connection. The core is unaware of the transport; implementations may
// push, buffer, or drop as their channel requires.
type ProgressNotifier interface {
	Notify(event UploadEvent)
}
