package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgrid/matcher/internal/domain/models"
)

func setupDb(t *testing.T) *DbContext {
	dbContext, err := NewDbContext(":memory:")
	require.NoError(t, err)
	require.NoError(t, dbContext.Migrate())
	t.Cleanup(func() { _ = dbContext.Close() })
	return dbContext
}

func addJob(t *testing.T, repo *Jobs, job models.JobPosting) {
	require.NoError(t, repo.Add(context.Background(), &job))
}

func Test_FindOpen_SkipsClosedJobs(t *testing.T) {
	repo := NewJobsRepository(setupDb(t).DB)

	addJob(t, repo, models.JobPosting{Title: "open", Status: models.JobOpen})
	addJob(t, repo, models.JobPosting{Title: "closed", Status: models.JobClosed})

	jobs, err := repo.FindOpen(context.Background(), models.JobFilters{})
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "open", jobs[0].Title)
}

func Test_FindOpen_AppliesHardFilters(t *testing.T) {
	repo := NewJobsRepository(setupDb(t).DB)

	addJob(t, repo, models.JobPosting{Title: "a", Status: models.JobOpen, Category: "web", ContractType: "hourly"})
	addJob(t, repo, models.JobPosting{Title: "b", Status: models.JobOpen, Category: "web", ContractType: "fixed"})
	addJob(t, repo, models.JobPosting{Title: "c", Status: models.JobOpen, Category: "mobile", ContractType: "hourly"})

	jobs, err := repo.FindOpen(context.Background(), models.JobFilters{Category: "web", ContractType: "hourly"})
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "a", jobs[0].Title)
}

func Test_FindOpen_RateBoundsMatchJobBand(t *testing.T) {
	repo := NewJobsRepository(setupDb(t).DB)

	low, high := 20.0, 40.0
	addJob(t, repo, models.JobPosting{Title: "banded", Status: models.JobOpen, HourlyRateMin: &low, HourlyRateMax: &high})
	addJob(t, repo, models.JobPosting{Title: "unbanded", Status: models.JobOpen})

	minRate := 50.0
	jobs, err := repo.FindOpen(context.Background(), models.JobFilters{MinRate: &minRate})
	assert.NoError(t, err)
	// the banded job tops out below the wanted rate; jobs without a band stay in
	assert.Len(t, jobs, 1)
	assert.Equal(t, "unbanded", jobs[0].Title)

	maxRate := 30.0
	jobs, err = repo.FindOpen(context.Background(), models.JobFilters{MaxRate: &maxRate})
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func Test_FindOpen_OrdersMostRecentFirst(t *testing.T) {
	repo := NewJobsRepository(setupDb(t).DB)

	addJob(t, repo, models.JobPosting{Title: "old", Status: models.JobOpen, CreatedAt: time.Now().Add(-48 * time.Hour)})
	addJob(t, repo, models.JobPosting{Title: "new", Status: models.JobOpen, CreatedAt: time.Now().Add(-time.Hour)})

	jobs, err := repo.FindOpen(context.Background(), models.JobFilters{})
	assert.NoError(t, err)
	assert.Equal(t, "new", jobs[0].Title)
	assert.Equal(t, "old", jobs[1].Title)
}

func Test_CloseExpired_OnlyTouchesOldOpenJobs(t *testing.T) {
	repo := NewJobsRepository(setupDb(t).DB)

	addJob(t, repo, models.JobPosting{Title: "stale", Status: models.JobOpen, CreatedAt: time.Now().Add(-90 * 24 * time.Hour)})
	addJob(t, repo, models.JobPosting{Title: "fresh", Status: models.JobOpen, CreatedAt: time.Now()})

	closed, err := repo.CloseExpired(context.Background(), time.Now().Add(-30*24*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	jobs, err := repo.FindOpen(context.Background(), models.JobFilters{})
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "fresh", jobs[0].Title)
}
