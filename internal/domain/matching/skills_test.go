package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SkillsEquivalent_MatchesSubstringsBothWays(t *testing.T) {
	assert.True(t, skillsEquivalent("react", "react"))
	assert.True(t, skillsEquivalent("react.js", "react"))
	assert.True(t, skillsEquivalent("react", "react.js"))
	assert.True(t, skillsEquivalent("java", "javascript")) // known false positive, kept on purpose
	assert.False(t, skillsEquivalent("python", "golang"))
	assert.False(t, skillsEquivalent("", "golang"))
}

func Test_SkillOverlap_KeepsJobSpellingAndDeduplicates(t *testing.T) {
	overlap := skillOverlap([]string{"react", "node.js"}, []string{"React", "REACT", "Python"})
	assert.Equal(t, []string{"React"}, overlap)
}

func Test_SkillOverlap_EmptyTalentSkills_ReturnsNothing(t *testing.T) {
	assert.Empty(t, skillOverlap(nil, []string{"React", "Python"}))
}

func Test_Jaccard_CountsNormalizedUnion(t *testing.T) {
	// talent {react, node.js}, job {React, Python}: overlap 1, union 3
	assert.InDelta(t, 1.0/3.0, jaccard(1, []string{"react", "node.js"}, []string{"React", "Python"}), 1e-9)
}

func Test_Jaccard_EmptyUnion_IsZeroNotNaN(t *testing.T) {
	assert.Equal(t, 0.0, jaccard(0, nil, nil))
}
