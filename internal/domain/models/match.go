package models

// MatchFilters narrows and tunes a match computation. Skills, when present,
// override the talent's stored skills entirely. Timezone only feeds the soft
// bonus; the rest are forwarded as hard filters to job retrieval.
type MatchFilters struct {
	Skills          []string
	MinRate         *float64
	MaxRate         *float64
	Timezone        string
	ContractType    string
	Category        string
	ExperienceLevel string
}

func (f MatchFilters) JobFilters() JobFilters {
	return JobFilters{
		Category:        f.Category,
		ContractType:    f.ContractType,
		ExperienceLevel: f.ExperienceLevel,
		MinRate:         f.MinRate,
		MaxRate:         f.MaxRate,
	}
}

type MatchResult struct {
	Job           JobPosting
	Score         int
	OverlapSkills []string
}
