package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"github.com/talentgrid/matcher/internal/domain/matching"
	"github.com/talentgrid/matcher/internal/domain/models"
	"github.com/talentgrid/matcher/internal/events"
	"github.com/talentgrid/matcher/internal/logger"
	"github.com/talentgrid/matcher/internal/metrics"
	"golang.org/x/sync/errgroup"
)

type talentRepository interface {
	GetSkills(ctx context.Context, id int64) ([]string, error)
	GetProfile(ctx context.Context, id int64) (*models.TalentProfile, error)
}

type jobRepository interface {
	FindOpen(ctx context.Context, filters models.JobFilters) ([]models.JobPosting, error)
}

// MatchService computes ranked job matches for a talent. Results are
// memoized per talent and filter set until the posting pool changes.
type MatchService struct {
	bus     EventBus.Bus
	talents talentRepository
	jobs    jobRepository
	cache   *gocache.Cache
	now     func() time.Time
}

func NewMatchService(bus EventBus.Bus, talents talentRepository, jobs jobRepository,
	cacheTTL time.Duration) (*MatchService, error) {

	s := &MatchService{
		bus:     bus,
		talents: talents,
		jobs:    jobs,
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
		now:     time.Now,
	}
	err := bus.Subscribe(events.JobsChangedTopic, s.onJobsChanged)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ComputeMatches resolves the talent's skills and profile, fetches the
// hard-filtered open postings and ranks them. Explicit filter skills override
// the stored ones and skip the skill fetch; an unknown talent ranks with an
// empty skill set. Repository errors abort the computation and propagate.
func (s *MatchService) ComputeMatches(ctx context.Context, talentID int64,
	filters models.MatchFilters) ([]models.MatchResult, error) {

	cacheID := createMatchCacheID(talentID, filters)
	if cached, found := s.cache.Get(cacheID); found {
		return cached.([]models.MatchResult), nil
	}

	start := time.Now()

	var talentSkills []string
	var profile *models.TalentProfile
	var candidateJobs []models.JobPosting

	// the three reads are independent
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if filters.Skills != nil {
			talentSkills = filters.Skills
			return nil
		}
		fetchStart := time.Now()
		defer observeStep("talent_retrieval", fetchStart)

		var err error
		talentSkills, err = s.talents.GetSkills(groupCtx, talentID)
		return err
	})
	group.Go(func() error {
		fetchStart := time.Now()
		defer observeStep("profile_retrieval", fetchStart)

		var err error
		profile, err = s.talents.GetProfile(groupCtx, talentID)
		return err
	})
	group.Go(func() error {
		fetchStart := time.Now()
		defer observeStep("job_retrieval", fetchStart)

		var err error
		candidateJobs, err = s.jobs.FindOpen(groupCtx, filters.JobFilters())
		return err
	})

	if err := group.Wait(); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load match inputs for talent %v: %v", talentID, err)
		return nil, err
	}

	scoringStart := time.Now()
	results := matching.Rank(candidateJobs, matching.Input{
		TalentSkills: talentSkills,
		Profile:      profile,
		Timezone:     filters.Timezone,
		Now:          s.now(),
	})
	observeStep("scoring", scoringStart)

	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	metrics.MatchesComputedCounter.Inc()
	if hasBackfill(results, talentSkills) {
		metrics.BackfilledMatchesCounter.Inc()
	}

	if err := s.cache.Add(cacheID, results, gocache.DefaultExpiration); err != nil {
		log.Errorf("failed to cache match results: %v", err)
	}

	s.bus.Publish(events.MatchesComputedTopic, events.MatchesComputed{
		TalentID: talentID,
		Results:  results,
	})

	log.Infof("computed %v matches for talent %v", len(results), talentID)
	return results, nil
}

func (s *MatchService) onJobsChanged(event events.JobsChanged) {
	log.Infof("job pool changed (%v added, %v closed, %v removed), flushing match cache",
		event.AddedCount, event.ClosedCount, event.RemovedCount)
	s.cache.Flush()
}

func observeStep(step string, start time.Time) {
	metrics.MatchStepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}

func hasBackfill(results []models.MatchResult, talentSkills []string) bool {
	if len(models.NormalizeSkillSet(talentSkills)) == 0 {
		return false
	}
	for _, result := range results {
		if len(result.OverlapSkills) == 0 {
			return true
		}
	}
	return false
}

// createMatchCacheID hashes the filter values, so equal filter sets share
// one cache entry regardless of which allocations carry the rate bounds.
func createMatchCacheID(talentID int64, filters models.MatchFilters) string {
	canonical := strings.Join([]string{
		strings.Join(filters.Skills, ","),
		formatRate(filters.MinRate),
		formatRate(filters.MaxRate),
		filters.Timezone,
		filters.ContractType,
		filters.Category,
		filters.ExperienceLevel,
	}, "|")
	filtersHash := sha256.Sum256([]byte(canonical))
	return strconv.FormatInt(talentID, 10) + ":" + hex.EncodeToString(filtersHash[:])
}

func formatRate(rate *float64) string {
	if rate == nil {
		return ""
	}
	return strconv.FormatFloat(*rate, 'f', -1, 64)
}
