// Package uploads tracks chunked upload sessions and pushes their progress
// towards the client's connection. The transport is behind
// ports.ProgressNotifier; the tracker itself never blocks on it.
package uploads

import (
	"context"
	"fmt"
	"sync"

	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/ports"
	"shootdesk/internal/pkg/errs"
)

// assetRegistrar is the slice of the media command surface the tracker
// needs to finish a session.
type assetRegistrar interface {
	Handle(ctx context.Context, cmd commands.RegisterMediaAssetCommand) error
}

type session struct {
	id            kernel.UUID
	totalBytes    int64
	receivedBytes int64
	completing    bool
}

// SessionTracker keeps in-flight upload sessions in memory. Each append
// emits a progress event; completing a session registers the media asset
// before the final event goes out.
//
// Sessions are process-local. A restart drops them, which matches the
// behavior clients already handle for an interrupted upload.
type SessionTracker struct {
	registrar assetRegistrar
	notifier  ports.ProgressNotifier

	mu       sync.Mutex
	sessions map[kernel.UUID]*session
}

// NewSessionTracker creates a tracker that hands completed uploads to the
// given registrar and pushes events through the given notifier.
func NewSessionTracker(registrar assetRegistrar, notifier ports.ProgressNotifier) (*SessionTracker, error) {
	if registrar == nil {
		return nil, errs.NewValueIsRequiredError("registrar")
	}
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}

	return &SessionTracker{
		registrar: registrar,
		notifier:  notifier,
		sessions:  make(map[kernel.UUID]*session),
	}, nil
}

// Start opens a session expecting totalBytes of payload and announces it
// with a zero-progress event.
func (t *SessionTracker) Start(totalBytes int64) (kernel.UUID, error) {
	if totalBytes <= 0 {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("totalBytes",
			fmt.Errorf("%d is not greater than 0", totalBytes))
	}

	sess := &session{
		id:         kernel.NewUUID(),
		totalBytes: totalBytes,
	}

	t.mu.Lock()
	t.sessions[sess.id] = sess
	t.mu.Unlock()

	t.notifier.Notify(ports.UploadEvent{
		SessionID:  sess.id,
		TotalBytes: totalBytes,
	})
	return sess.id, nil
}

// Append records chunkBytes more of the payload and emits a progress
// event. Overshooting totalBytes fails the session: the client is sending
// something other than what it announced.
func (t *SessionTracker) Append(sessionID kernel.UUID, chunkBytes int64) (int64, error) {
	if chunkBytes <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("chunkBytes",
			fmt.Errorf("%d is not greater than 0", chunkBytes))
	}

	t.mu.Lock()
	sess, ok := t.sessions[sessionID]
	if !ok {
		t.mu.Unlock()
		return 0, errs.NewObjectNotFoundError("sessionId", sessionID)
	}

	if sess.receivedBytes+chunkBytes > sess.totalBytes {
		delete(t.sessions, sessionID)
		event := ports.UploadEvent{
			SessionID:     sessionID,
			ReceivedBytes: sess.receivedBytes,
			TotalBytes:    sess.totalBytes,
			Failed:        true,
			Reason:        "payload exceeds the announced size",
		}
		t.mu.Unlock()

		t.notifier.Notify(event)
		return 0, errs.NewValueIsInvalidErrorWithCause("chunkBytes",
			fmt.Errorf("%d bytes overshoot the announced total of %d",
				sess.receivedBytes+chunkBytes, sess.totalBytes))
	}

	sess.receivedBytes += chunkBytes
	event := ports.UploadEvent{
		SessionID:     sessionID,
		ReceivedBytes: sess.receivedBytes,
		TotalBytes:    sess.totalBytes,
	}
	t.mu.Unlock()

	t.notifier.Notify(event)
	return event.ReceivedBytes, nil
}

// Complete closes a fully received session: the asset is registered first,
// and only a successful registration emits the completion event and
// discards the session. On registration failure the session stays open so
// the caller can retry.
func (t *SessionTracker) Complete(ctx context.Context, sessionID kernel.UUID, cmd commands.RegisterMediaAssetCommand) error {
	t.mu.Lock()
	sess, ok := t.sessions[sessionID]
	if !ok {
		t.mu.Unlock()
		return errs.NewObjectNotFoundError("sessionId", sessionID)
	}
	if sess.completing {
		t.mu.Unlock()
		return errs.NewInvalidOperationErrorWithCause("complete upload",
			fmt.Errorf("session %s is already completing", sessionID))
	}
	if sess.receivedBytes != sess.totalBytes {
		t.mu.Unlock()
		return errs.NewInvalidOperationErrorWithCause("complete upload",
			fmt.Errorf("received %d of %d bytes", sess.receivedBytes, sess.totalBytes))
	}
	sess.completing = true
	t.mu.Unlock()

	if err := t.registrar.Handle(ctx, cmd); err != nil {
		t.mu.Lock()
		sess.completing = false
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	delete(t.sessions, sessionID)
	event := ports.UploadEvent{
		SessionID:     sessionID,
		ReceivedBytes: sess.receivedBytes,
		TotalBytes:    sess.totalBytes,
		Completed:     true,
	}
	t.mu.Unlock()

	t.notifier.Notify(event)
	return nil
}

// Fail abandons a session and tells the client why.
func (t *SessionTracker) Fail(sessionID kernel.UUID, reason string) error {
	t.mu.Lock()
	sess, ok := t.sessions[sessionID]
	if !ok {
		t.mu.Unlock()
		return errs.NewObjectNotFoundError("sessionId", sessionID)
	}
	delete(t.sessions, sessionID)
	event := ports.UploadEvent{
		SessionID:     sessionID,
		ReceivedBytes: sess.receivedBytes,
		TotalBytes:    sess.totalBytes,
		Failed:        true,
		Reason:        reason,
	}
	t.mu.Unlock()

	t.notifier.Notify(event)
	return nil
}
