package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dailyReceiptJob *DailyReceiptJob
}

func NewJobManager(dailyReceiptJob *DailyReceiptJob) *JobManager {
	return &JobManager{
		dailyReceiptJob: dailyReceiptJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyReceiptJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily receipt job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyReceiptJob.Stop()
}
