package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pushRelayJob *PushRelayJob
}

// NewJobManager creates a job manager wired to the notification dispatcher.
func NewJobManager(retrier pushRetrier, logger *slog.Logger) *JobManager {
	return &JobManager{
		pushRelayJob: NewPushRelayJob(retrier, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pushRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start push relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pushRelayJob.Stop()
}
