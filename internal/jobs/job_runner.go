package jobs

import (
	"context"
	"time"

	"apnrghor-backend/internal/config"
	"apnrghor-backend/internal/logger"
	"apnrghor-backend/internal/repository"
)

// JobRunner coordinates scheduled maintenance jobs.
type JobRunner struct {
	apartmentRepo repository.ApartmentRepository
	agreementRepo repository.AgreementRepository
	config        *config.Config
}

func NewJobRunner(
	apartmentRepo repository.ApartmentRepository,
	agreementRepo repository.AgreementRepository,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		apartmentRepo: apartmentRepo,
		agreementRepo: agreementRepo,
		config:        cfg,
	}
}

// Config returns the runner's configuration
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

// ReconcileAvailability repairs the drift the non-transactional workflows
// can leave behind. Idempotent: running it twice changes nothing the second
// time.
func (jr *JobRunner) ReconcileAvailability() {
	jr.runWithRecovery("ReconcileAvailability", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		// Unavailable apartments with no live agreement come back on market.
		orphaned, err := jr.apartmentRepo.ListOrphanedUnavailable(ctx)
		if err != nil {
			logger.Error("Failed to list orphaned apartments", "error", err)
			return
		}
		freed := 0
		for _, id := range orphaned {
			if err := jr.apartmentRepo.SetAvailability(ctx, id, true); err != nil {
				logger.Error("Failed to restore apartment availability", "apartment_id", id, "error", err)
				continue
			}
			freed++
		}

		// Checked agreements whose user lost the member role are stale.
		removed, err := jr.agreementRepo.DeleteStaleChecked(ctx)
		if err != nil {
			logger.Error("Failed to remove stale agreements", "error", err)
			return
		}

		if freed > 0 || removed > 0 {
			logger.Info("Availability reconciled", "apartments_freed", freed, "agreements_removed", removed)
		}
	})
}
