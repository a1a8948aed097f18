package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/talentgrid/matcher/internal/events"
)

type jobCleanupRepository interface {
	CloseExpired(ctx context.Context, cutoff time.Time) (int64, error)
	RemoveOldClosed(ctx context.Context, cutoff time.Time) (int64, error)
}

// JobsCleaner closes postings past their shelf life and purges long-closed
// ones on a daily schedule.
type JobsCleaner struct {
	jobs             jobCleanupRepository
	bus              EventBus.Bus
	cron             *cron.Cron
	expirationInDays int
	removalAfterDays int
}

func NewJobsCleaner(jobs jobCleanupRepository, bus EventBus.Bus,
	expirationInDays, removalAfterDays int) (*JobsCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}
	if removalAfterDays < expirationInDays {
		return nil, errors.New("removal must not happen before expiration")
	}

	jc := &JobsCleaner{
		jobs:             jobs,
		bus:              bus,
		cron:             cron.New(),
		expirationInDays: expirationInDays,
		removalAfterDays: removalAfterDays,
	}

	_, err := jc.cron.AddFunc("0 0 * * *", jc.cleanStaleJobs)
	if err != nil {
		return nil, err
	}

	jc.cron.Start()
	log.Infof("jobs cleaner started, expiration in days: %d, removal after days: %d",
		jc.expirationInDays, jc.removalAfterDays)
	return jc, nil
}

func (jc *JobsCleaner) Stop() {
	jc.cron.Stop()
}

// RunCleanupNow triggers the cleanup pass outside the schedule.
func (jc *JobsCleaner) RunCleanupNow() {
	jc.cleanStaleJobs()
}

func (jc *JobsCleaner) cleanStaleJobs() {

	closed, err := jc.jobs.CloseExpired(context.Background(),
		time.Now().Add(-time.Duration(jc.expirationInDays)*24*time.Hour))
	if err != nil {
		log.Errorf("failed to close expired jobs: %v", err)
		return
	}

	removed, err := jc.jobs.RemoveOldClosed(context.Background(),
		time.Now().Add(-time.Duration(jc.removalAfterDays)*24*time.Hour))
	if err != nil {
		log.Errorf("failed to remove old closed jobs: %v", err)
		return
	}

	if closed > 0 || removed > 0 {
		log.Infof("stale jobs cleaned at %v, closed: %v, removed: %v", time.Now(), closed, removed)
		jc.bus.Publish(events.JobsChangedTopic, events.JobsChanged{
			ClosedCount:  closed,
			RemovedCount: removed,
		})
	}
}
