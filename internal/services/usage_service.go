package services

import (
	"fmt"
	"time"

	"aideal-backend/internal/database"
	"aideal-backend/pkg/logger"

	"go.uber.org/zap"
)

const promptCopyKeyPrefix = "usage:prompt_copy:"

// EnsurePromptCopyAllowed records one prompt copy for the user and enforces
// the per-day ceiling. The counter lives in Redis under a key that expires
// at local midnight, so the quota resets with the calendar day.
func EnsurePromptCopyAllowed(userID uint, dailyLimit int) error {
	now := time.Now()
	key := fmt.Sprintf("%s%d:%s", promptCopyKeyPrefix, userID, now.Format("2006-01-02"))

	count, err := database.RedisClient.Incr(database.Ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
		if err := database.RedisClient.ExpireAt(database.Ctx, key, midnight).Err(); err != nil {
			// The counter still enforces the limit; it just never resets.
			logger.Log.Warn("failed to set expiry on quota counter",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	if count > int64(dailyLimit) {
		return fmt.Errorf("%w: daily prompt copy limit %d reached", ErrQuotaExceeded, dailyLimit)
	}
	return nil
}
