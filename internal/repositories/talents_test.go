package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgrid/matcher/internal/domain/models"
)

func Test_GetSkills_UnknownTalent_ReturnsEmptyWithoutError(t *testing.T) {
	repo := NewTalentsRepository(setupDb(t).DB)

	skills, err := repo.GetSkills(context.Background(), 42)
	assert.NoError(t, err)
	assert.Empty(t, skills)
}

func Test_GetSkillsAndProfile_RoundTrip(t *testing.T) {
	repo := NewTalentsRepository(setupDb(t).DB)

	rate := 30.0
	talent := models.NewTalent("ada", []string{"Go", "Postgres"}, &rate, "Europe/Berlin")
	require.NoError(t, repo.Add(context.Background(), talent))

	skills, err := repo.GetSkills(context.Background(), talent.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go", "Postgres"}, skills)

	profile, err := repo.GetProfile(context.Background(), talent.ID)
	assert.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, rate, *profile.HourlyRate)
	assert.Equal(t, "Europe/Berlin", profile.Timezone)
}

func Test_CachedTalents_ServesSecondReadFromCache(t *testing.T) {
	repo := NewTalentsRepository(setupDb(t).DB)

	talent := models.NewTalent("ada", []string{"Go"}, nil, "")
	require.NoError(t, repo.Add(context.Background(), talent))

	cached := NewCachedTalents(repo)

	skills, err := cached.GetSkills(context.Background(), talent.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go"}, skills)

	// change the row under the cache; the cached value must win until invalidated
	require.NoError(t, repo.UpdateSkills(context.Background(), talent.ID, []string{"Rust"}))

	skills, err = cached.GetSkills(context.Background(), talent.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go"}, skills)

	cached.Invalidate(talent.ID)
	skills, err = cached.GetSkills(context.Background(), talent.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, skills)
}
