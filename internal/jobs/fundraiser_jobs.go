package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/logger"
)

// CompleteExpiredFundraisers sweeps active fundraisers whose end date has
// passed and flips them to COMPLETED. A donation racing the sweep wins: the
// version check makes the flip a no-op and the next sweep picks the record
// up again if it is still active.
func (jr *JobRunner) CompleteExpiredFundraisers() {
	jr.runWithRecovery("CompleteExpiredFundraisers", func() {
		ctx := context.Background()

		expired, err := jr.fundraiserRepo.ListExpiredActive(ctx)
		if err != nil {
			logger.Error("Failed to list expired fundraisers", "error", err)
			return
		}

		count := 0
		for i := range expired {
			f := &expired[i]
			if !f.ExpireIfPast(jr.now()) {
				continue
			}
			if err := jr.fundraiserRepo.Update(ctx, f); err != nil {
				if errors.Is(err, domain.ErrVersionConflict) {
					logger.Debug("Skipping fundraiser modified concurrently", "fundraiser_id", f.ID)
					continue
				}
				logger.Error("Failed to complete expired fundraiser", "fundraiser_id", f.ID, "error", err)
				continue
			}
			count++

			note := &domain.Notification{
				ID:      uuid.NewString(),
				UserID:  f.OwnerID,
				Title:   "Fundraiser Ended",
				Message: fmt.Sprintf("%s ended with %d of %d raised", f.Title, f.CurrentAmount, f.GoalAmount),
				Attributes: map[string]string{
					"type":          "FUNDRAISER_ENDED",
					"fundraiser_id": f.ID,
				},
			}
			if err := jr.notificationRepo.Create(ctx, note); err != nil {
				logger.Warn("Failed to create fundraiser ended notification", "fundraiser_id", f.ID, "error", err)
			}
		}

		logger.Info("Completed expired fundraisers", "count", count)
	})
}
