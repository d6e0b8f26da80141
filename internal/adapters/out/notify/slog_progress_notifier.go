// Package notify carries upload progress events towards clients. The real
// transport (websocket push, long poll) lives outside this service; this
// adapter logs the stream so operators can follow an upload end to end.
package notify

import (
	"log/slog"

	"shootdesk/internal/core/ports"
)

// SlogProgressNotifier writes upload events to the structured log.
type SlogProgressNotifier struct {
	logger *slog.Logger
}

// NewSlogProgressNotifier creates a notifier writing to the given logger.
func NewSlogProgressNotifier(logger *slog.Logger) SlogProgressNotifier {
	return SlogProgressNotifier{logger: logger.With("component", "uploads")}
}

// Notify logs one upload event. Never blocks the tracker.
func (n SlogProgressNotifier) Notify(event ports.UploadEvent) {
	switch {
	case event.Failed:
		n.logger.Warn("upload failed",
			"sessionId", event.SessionID.String(),
			"receivedBytes", event.ReceivedBytes,
			"totalBytes", event.TotalBytes,
			"reason", event.Reason,
		)
	case event.Completed:
		n.logger.Info("upload completed",
			"sessionId", event.SessionID.String(),
			"totalBytes", event.TotalBytes,
		)
	default:
		n.logger.Debug("upload progress",
			"sessionId", event.SessionID.String(),
			"receivedBytes", event.ReceivedBytes,
			"totalBytes", event.TotalBytes,
		)
	}
}
