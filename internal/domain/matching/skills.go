package matching

import (
	"strings"

	"github.com/samber/lo"
	"github.com/talentgrid/matcher/internal/domain/models"
)

// skillsEquivalent reports whether two normalized skill names refer to the
// same skill. Substring containment in either direction is accepted so that
// naming variants like "React.js" and "React" still match. The flip side is
// that "Java" also matches "JavaScript"; callers rely on this predicate being
// the single place to tighten if that ever changes.
func skillsEquivalent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// skillOverlap returns the job's skills (original spelling) that have an
// equivalent among the talent's skills. Both inputs must be normalized with
// models.NormalizeSkillSet except jobSkills, which keeps its original names
// for the result; counting happens on normalized forms.
func skillOverlap(talentSkills, jobSkills []string) []string {
	seen := map[string]bool{}
	var overlap []string
	for _, jobSkill := range jobSkills {
		normalized := models.NormalizeSkillName(jobSkill)
		if normalized == "" || seen[normalized] {
			continue
		}
		match := lo.SomeBy(talentSkills, func(talentSkill string) bool {
			return skillsEquivalent(talentSkill, normalized)
		})
		if match {
			seen[normalized] = true
			overlap = append(overlap, jobSkill)
		}
	}
	return overlap
}

// jaccard computes |overlap| / |talent ∪ job| over normalized skill sets.
// An empty union yields 0 by convention.
func jaccard(overlapCount int, talentSkills, jobSkills []string) float64 {
	union := lo.Union(talentSkills, models.NormalizeSkillSet(jobSkills))
	if len(union) == 0 {
		return 0
	}
	return float64(overlapCount) / float64(len(union))
}
