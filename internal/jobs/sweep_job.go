package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/quickbite/dispatch/internal/pkg/logger"
)

// staleSweeper removes registry entries whose channel reports closed
type staleSweeper interface {
	SweepStale() int
}

// SweepJob periodically evicts dead connections from the registry. Lazy
// cleanup during broadcast already catches most of them; the sweep bounds how
// long an idle dead connection can linger.
type SweepJob struct {
	registry        staleSweeper
	cron            *cron.Cron
	intervalSeconds int
}

// NewSweepJob creates a sweep job running every intervalSeconds
func NewSweepJob(registry staleSweeper, intervalSeconds int) *SweepJob {
	if intervalSeconds <= 0 {
		intervalSeconds = 30
	}
	return &SweepJob{
		registry:        registry,
		cron:            cron.New(cron.WithSeconds()),
		intervalSeconds: intervalSeconds,
	}
}

// Start schedules the sweep
func (j *SweepJob) Start() error {
	spec := fmt.Sprintf("*/%d * * * * *", j.intervalSeconds)
	_, err := j.cron.AddFunc(spec, func() {
		if removed := j.registry.SweepStale(); removed > 0 {
			logger.Info("Stale connection sweep completed",
				logger.Int("removed", removed))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	logger.Info("Stale connection sweep scheduled",
		logger.Int("interval_seconds", j.intervalSeconds))
	return nil
}

// Stop stops the sweep job
func (j *SweepJob) Stop() {
	j.cron.Stop()
}
