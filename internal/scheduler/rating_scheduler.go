package scheduler

import (
	"github.com/mithramani/vivaha-backend/internal/app/repository"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// RatingScheduler keeps the denormalized vendor rating and review_count
// columns consistent with the reviews table.
type RatingScheduler struct {
	cron       *cron.Cron
	vendorRepo repository.VendorRepository
}

func NewRatingScheduler(vendorRepo repository.VendorRepository) *RatingScheduler {
	return &RatingScheduler{
		cron:       cron.New(),
		vendorRepo: vendorRepo,
	}
}

// Start schedules the nightly recomputation.
func (s *RatingScheduler) Start() error {
	// Every day at 03:00; ratings drift only when reviews are edited
	// out of band, so nightly is enough.
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		logger.Info("Starting scheduled vendor rating recomputation", nil)

		updated, err := s.vendorRepo.RecalculateRatings()
		if err != nil {
			logger.Error("Failed to recompute vendor ratings", err)
			return
		}

		logger.Info("Vendor ratings recomputed", map[string]interface{}{
			"vendors_updated": updated,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for rating recomputation", err)
		return err
	}

	s.cron.Start()
	logger.Info("Rating scheduler started successfully (daily at 3:00 AM)", nil)

	return nil
}

// Stop stops the scheduler.
func (s *RatingScheduler) Stop() {
	logger.Info("Stopping rating scheduler...", nil)
	s.cron.Stop()
	logger.Info("Rating scheduler stopped", nil)
}
