package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/matcher/internal/domain/models"
)

type staticExplainer struct {
	explanation string
}

func (s staticExplainer) ExplainMatch(ctx context.Context, talentSkills []string,
	result models.MatchResult) (string, error) {
	return s.explanation, nil
}

func Test_FormatDigest_ListsMatchesWithOverlap(t *testing.T) {

	notifier := &Notifier{}
	talent := models.NewTalent("ada", []string{"Go"}, nil, "")

	digest := notifier.formatDigest(talent, []models.MatchResult{
		{Job: *models.NewJobPosting("backend dev", []string{"Go"}), Score: 100, OverlapSkills: []string{"Go"}},
		{Job: *models.NewJobPosting("odd job", nil), Score: 0},
	})

	assert.Contains(t, digest, "Top job matches for you (2):")
	assert.Contains(t, digest, "1. backend dev - matching skills: Go")
	assert.Contains(t, digest, "2. odd job")
}

func Test_FormatDigest_IncludesExplanationsWhenAvailable(t *testing.T) {

	notifier := &Notifier{explainer: staticExplainer{explanation: "They need your Go experience."}}
	talent := models.NewTalent("ada", []string{"Go"}, nil, "")

	digest := notifier.formatDigest(talent, []models.MatchResult{
		{Job: *models.NewJobPosting("backend dev", []string{"Go"}), Score: 100, OverlapSkills: []string{"Go"}},
	})

	assert.Contains(t, digest, "They need your Go experience.")
}
