package jobs

import (
	"context"
	"log/slog"
	"time"

	"shootdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PackageExpiryJob sweeps published delivery packages whose expiry
// deadline has elapsed. Runs every minute; each run moves every overdue
// package to Expired in one unit of work.
type PackageExpiryJob struct {
	handler commands.ExpireDeliveryPackagesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPackageExpiryJob creates the expiry sweep job.
func NewPackageExpiryJob(handler commands.ExpireDeliveryPackagesCommandHandler, logger *slog.Logger) *PackageExpiryJob {
	return &PackageExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "package_expiry_job"),
	}
}

// Start begins the sweep on a once-a-minute schedule.
func (j *PackageExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireDeliveryPackagesCommand(time.Now().UTC())

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Package expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Package expiry job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *PackageExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Package expiry job stopped")
}
