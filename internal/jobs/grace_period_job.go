package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// GracePeriodJob periodically advances Submitted orders whose grace period
// elapsed to AwaitingStockValidation. The grace period gives buyers a window
// to cancel an order before stock validation begins.
type GracePeriodJob struct {
	handler     commands.StartStockValidationCommandHandler
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewGracePeriodJob creates a job that checks for expired orders every
// second. Orders submitted more than gracePeriod ago are moved to stock
// validation.
func NewGracePeriodJob(
	handler commands.StartStockValidationCommandHandler,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *GracePeriodJob {
	return &GracePeriodJob{
		handler:     handler,
		gracePeriod: gracePeriod,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "grace_period_job"),
	}
}

// Start begins the grace period job to run every second.
func (j *GracePeriodJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewStartStockValidationCommand(time.Now().UTC().Add(-j.gracePeriod))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Grace period job failed to build command", "error", cmdErr)
			return
		}

		advanced, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Grace period job failed", "error", handleErr)
			return
		}

		if advanced > 0 {
			j.logger.InfoContext(ctx, "Orders moved to stock validation", "count", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Grace period job started (running every second)")
	return nil
}

// Stop stops the grace period job.
func (j *GracePeriodJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Grace period job stopped")
}
