package jobs

import (
	"context"
	"time"

	"eventdesk-backend/internal/logger"
)

// AutoRolloverDueEvents transitions stale preregistered records to
// did-not-attend for every active event whose grace period has elapsed.
func (jr *JobRunner) AutoRolloverDueEvents() {
	jr.runWithRecovery("AutoRolloverDueEvents", func() {
		ctx := context.Background()

		changed, err := jr.services.Rollover.ProcessDueEvents(ctx, jr.config.Rollover.GraceSeconds, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to process due events", "error", err)
			return
		}
		logger.Info("Auto-rollover sweep finished", "records_changed", changed)
	})
}
