package jobs

import (
	"time"

	"growthlink-backend/internal/config"
	"growthlink-backend/internal/logger"
	"growthlink-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	fundraiserRepo   repository.FundraiserRepository
	notificationRepo repository.NotificationRepository
	config           *config.Config
	now              func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(fundraiserRepo repository.FundraiserRepository, notificationRepo repository.NotificationRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		fundraiserRepo:   fundraiserRepo,
		notificationRepo: notificationRepo,
		config:           cfg,
		now:              time.Now,
	}
}

// Config exposes the configuration for schedule registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
