package tasks

import (
	"context"
	"time"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
)

// CleanupInterval is how often expired password reset tokens are purged.
const CleanupInterval = 60 * time.Second

// ResetTokenCleaner hard-deletes password reset tokens past their TTL.
type ResetTokenCleaner struct {
	Resets   services.InterfacePasswordResetService
	Interval time.Duration
}

func NewResetTokenCleaner(resets services.InterfacePasswordResetService) *ResetTokenCleaner {
	return &ResetTokenCleaner{
		Resets:   resets,
		Interval: CleanupInterval,
	}
}

// Start runs the cleanup loop until ctx is cancelled.
func (c *ResetTokenCleaner) Start(ctx context.Context) {
	logger.Info("reset token cleaner started, interval %s", c.Interval)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reset token cleaner stopped")
			return
		case <-ticker.C:
			deleted, err := c.Resets.DeleteExpired(time.Now())
			if err != nil {
				logger.Error("reset token cleanup failed: %v", err)
				continue
			}
			if deleted > 0 {
				logger.Debug("purged %d expired reset tokens", deleted)
			}
		}
	}
}
