package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many notifications one relay run re-attempts.
const relayBatchSize = 100

// pushRetrier is the slice of the notification dispatcher the relay needs.
type pushRetrier interface {
	RetryPending(ctx context.Context, limit int) (int, error)
}

// PushRelayJob periodically re-attempts push delivery for notifications
// still pending or failed.
type PushRelayJob struct {
	retrier pushRetrier
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPushRelayJob creates the relay job. It does not start it.
func NewPushRelayJob(retrier pushRetrier, logger *slog.Logger) *PushRelayJob {
	return &PushRelayJob{
		retrier: retrier,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "push_relay_job"),
	}
}

// Start begins the relay job, running every 30 seconds.
func (j *PushRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		attempted, err := j.retrier.RetryPending(ctx, relayBatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "push relay run failed", "error", err)
			return
		}
		if attempted > 0 {
			j.logger.InfoContext(ctx, "push relay run finished", "attempted", attempted)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "push relay job started (running every 30 seconds)")
	return nil
}

// Stop stops the relay job.
func (j *PushRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "push relay job stopped")
}
