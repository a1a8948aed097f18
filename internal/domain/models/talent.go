package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Talent struct {
	ID         int64
	Name       string
	Skills     string
	HourlyRate *float64
	Timezone   string
	ChatID     int64 // telegram chat for match notifications, 0 when not linked
	CreatedAt  time.Time
}

func NewTalent(name string, skills []string, hourlyRate *float64, timezone string) *Talent {
	return &Talent{
		Name:       name,
		Skills:     strings.Join(skills, ","),
		HourlyRate: hourlyRate,
		Timezone:   timezone,
	}
}

func (t *Talent) SkillsAsArray() []string {
	if t.Skills == "" {
		return []string{}
	}
	return strings.Split(t.Skills, ",")
}

// TalentProfile carries the attributes the scorer uses for soft bonuses.
type TalentProfile struct {
	HourlyRate *float64
	Timezone   string
}

func (t *Talent) Profile() *TalentProfile {
	return &TalentProfile{HourlyRate: t.HourlyRate, Timezone: t.Timezone}
}

// NormalizeSkillName brings a skill to its canonical matching form.
func NormalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeSkillSet normalizes and de-duplicates, dropping empty entries.
func NormalizeSkillSet(skills []string) []string {
	normalized := lo.FilterMap(skills, func(s string, _ int) (string, bool) {
		n := NormalizeSkillName(s)
		return n, n != ""
	})
	return lo.Uniq(normalized)
}
