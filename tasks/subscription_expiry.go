// Package tasks runs the periodic maintenance jobs. Subscriptions carry an
// endDate that nothing on the request path enforces; the sweep below is what
// turns an overdue active subscription into an expired one.
package tasks

import (
	"fmt"
	"time"

	"creatorhub-backend/models"
	"creatorhub-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ExpireOverdueSubscriptions marks active subscriptions whose endDate has
// passed as expired. Returns the number of rows updated.
func ExpireOverdueSubscriptions(database *gorm.DB, now time.Time) (int64, error) {
	result := database.Model(&models.Subscription{}).
		Where("status = ?", models.SubscriptionActive).
		Where("end_date < ?", now).
		Update("status", models.SubscriptionExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("expiring subscriptions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// StartScheduler registers the maintenance jobs and starts the cron loop.
// The caller owns the returned cron and should Stop it on shutdown.
func StartScheduler(database *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		count, err := ExpireOverdueSubscriptions(database, time.Now().UTC())
		if err != nil {
			utils.LogError(err, "Subscription expiry sweep failed")
			return
		}
		if count > 0 {
			utils.LogInfo(fmt.Sprintf("Subscription expiry sweep: %d subscriptions expired", count))
		}
	})
	if err != nil {
		utils.LogError(err, "Could not register subscription expiry job")
	}

	c.Start()
	return c
}
