// Package matching ranks open job postings against a talent's skill set.
// The ranking is a pure computation: all inputs are passed explicitly and
// repeated calls over the same snapshot return identical results.
package matching

import (
	"math"
	"sort"
	"time"

	"github.com/talentgrid/matcher/internal/domain/models"
)

// MaxResults is the number of matches a ranking returns at most.
const MaxResults = 3

const (
	baseScoreScale     = 100
	fallbackScoreScale = 50
)

// Input is a snapshot of everything the ranking depends on besides the
// candidate jobs themselves.
type Input struct {
	TalentSkills []string
	Profile      *models.TalentProfile // optional
	Timezone     string                // wanted timezone from the filters, soft bonus only
	Now          time.Time
}

// Rank scores the candidate jobs against the input and returns up to
// MaxResults matches, best first.
//
// Jobs with no skill overlap are excluded as long as the talent declared any
// skills; with an empty skill set every job stays in and ranking is driven by
// the soft bonuses alone. When fewer than MaxResults jobs survive the overlap
// filter, the excluded ones are appended as backfill, scored by a halved
// Jaccard term without bonuses. Candidates are bucketed in a single pass and
// each bucket is sorted stably, so equal scores keep the retrieval order.
func Rank(jobs []models.JobPosting, in Input) []models.MatchResult {

	talentSkills := models.NormalizeSkillSet(in.TalentSkills)

	var matched, fallback []models.MatchResult
	for _, job := range jobs {
		jobSkills := job.SkillsAsArray()
		overlap := skillOverlap(talentSkills, jobSkills)
		similarity := jaccard(len(overlap), talentSkills, jobSkills)

		if len(overlap) == 0 && len(talentSkills) > 0 {
			fallback = append(fallback, models.MatchResult{
				Job:           job,
				Score:         int(math.Round(similarity * fallbackScoreScale)),
				OverlapSkills: overlap,
			})
			continue
		}

		score := int(math.Round(similarity * baseScoreScale))
		score += rateBonus(in.Profile, &job)
		if in.Profile != nil {
			score += timezoneAffinity(in.Profile.Timezone, in.Timezone)
		}
		score += recencyBonus(job.CreatedAt, in.Now)

		matched = append(matched, models.MatchResult{
			Job:           job,
			Score:         score,
			OverlapSkills: overlap,
		})
	}

	sortByScore(matched)
	if len(matched) < MaxResults {
		sortByScore(fallback)
		matched = append(matched, fallback...)
	}

	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return matched
}

func sortByScore(results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
