package workers

import (
	"context"
	"time"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/repositories"
)

// JobWorker runs the background maintenance tasks for job postings.
type JobWorker struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewJobWorker(jobRepo repositories.JobRepository, userRepo repositories.UserRepository, cfg *config.Config) *JobWorker {
	return &JobWorker{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (w *JobWorker) Start(ctx context.Context) {
	go w.expireStaleJobs(ctx)
	go w.cleanRefreshTokens(ctx)
}

// expireStaleJobs moves active postings past the configured age to expired.
// Expired jobs drop out of search but stay visible to their owner.
func (w *JobWorker) expireStaleJobs(ctx context.Context) {
	if w.cfg.Jobs.ExpireAfterDays <= 0 {
		logger.Info("Job expiry worker disabled")
		return
	}

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Job expiry worker stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().AddDate(0, 0, -w.cfg.Jobs.ExpireAfterDays)
			expired, err := w.jobRepo.ExpireOlderThan(ctx, cutoff)
			if err != nil {
				logger.Error("Failed to expire stale jobs", "error", err)
			} else if expired > 0 {
				logger.Info("Expired stale jobs", "count", expired)
			}
		}
	}
}

func (w *JobWorker) cleanRefreshTokens(ctx context.Context) {
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Refresh token cleanup worker stopped")
			return
		case <-ticker.C:
			if err := w.userRepo.CleanExpiredRefreshTokens(ctx); err != nil {
				logger.Error("Failed to clean expired refresh tokens", "error", err)
			}
		}
	}
}
