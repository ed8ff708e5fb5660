package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bizmandi/storefront/pkg/metrics"
	"github.com/bizmandi/storefront/pkg/sellerprofile"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron      *cron.Cron
	profiles  *sellerprofile.Service
	metrics   *metrics.Metrics
	retention time.Duration
	logger    *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(profiles *sellerprofile.Service, m *metrics.Metrics, retention time.Duration, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:      cron.New(),
		profiles:  profiles,
		metrics:   m,
		retention: retention,
		logger:    logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 3 AM: remove draft registrations nobody came back for
	_, err := cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running stale draft cleanup job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		n, err := cm.profiles.PurgeStaleDrafts(ctx, cm.retention)
		if err != nil {
			cm.logger.Printf("❌ Failed to purge stale drafts: %v", err)
			return
		}

		if cm.metrics != nil {
			cm.metrics.RecordStaleDraftsPurged(n)
		}
		cm.logger.Printf("✅ Stale draft cleanup removed %d drafts", n)
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - Daily at 3 AM: purge drafts older than %s", cm.retention)

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
