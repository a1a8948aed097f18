package models

import (
	"strings"
	"time"
)

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

type JobPosting struct {
	ID              int64
	Title           string
	Status          JobStatus
	Skills          string
	Category        string
	ContractType    string
	ExperienceLevel string
	Budget          *float64
	HourlyRateMin   *float64
	HourlyRateMax   *float64
	CreatedAt       time.Time
}

func NewJobPosting(title string, skills []string) *JobPosting {
	return &JobPosting{
		Title:  title,
		Status: JobOpen,
		Skills: strings.Join(skills, ","),
	}
}

func (j *JobPosting) SkillsAsArray() []string {
	if j.Skills == "" {
		return []string{}
	}
	return strings.Split(j.Skills, ",")
}

// HasRateBand reports whether both band edges are set; the rate bonus
// is only applicable to a complete band.
func (j *JobPosting) HasRateBand() bool {
	return j.HourlyRateMin != nil && j.HourlyRateMax != nil
}

// JobFilters are hard pre-filters applied at retrieval time. Zero values
// mean "no constraint".
type JobFilters struct {
	Category        string
	ContractType    string
	ExperienceLevel string
	MinRate         *float64
	MaxRate         *float64
}
