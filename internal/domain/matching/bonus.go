package matching

import (
	"math"
	"strings"
	"time"

	"github.com/talentgrid/matcher/internal/domain/models"
)

// Soft bonus ladder:
//
//	rate inside band            +20
//	rate within 10 of an edge   +10
//	timezone exact match        +15
//	timezone same coarse region  +5
//	posted ≤3 days ago          +10
//	posted ≤7 days ago           +5
const (
	rateInBandBonus     = 20
	rateNearBandBonus   = 10
	rateNearBandMargin  = 10.0
	timezoneExactBonus  = 15
	timezoneRegionBonus = 5
	freshJobBonus       = 10
	recentJobBonus      = 5
)

var timezoneRegions = []string{"america", "europe", "asia"}

// rateBonus rewards a talent whose hourly rate fits the job's band. Both the
// talent rate and the full band must be present.
func rateBonus(profile *models.TalentProfile, job *models.JobPosting) int {
	if profile == nil || profile.HourlyRate == nil || !job.HasRateBand() {
		return 0
	}
	rate := *profile.HourlyRate
	if rate >= *job.HourlyRateMin && rate <= *job.HourlyRateMax {
		return rateInBandBonus
	}
	if math.Abs(rate-*job.HourlyRateMin) <= rateNearBandMargin ||
		math.Abs(rate-*job.HourlyRateMax) <= rateNearBandMargin {
		return rateNearBandBonus
	}
	return 0
}

// timezoneAffinity compares the talent's timezone against the requested one.
// This is a string heuristic, not IANA-zone-aware: exact equality wins, a
// shared continent token is worth a little, anything else nothing.
func timezoneAffinity(talentTimezone, wantedTimezone string) int {
	if talentTimezone == "" || wantedTimezone == "" {
		return 0
	}
	talent, wanted := strings.ToLower(talentTimezone), strings.ToLower(wantedTimezone)
	if talent == wanted {
		return timezoneExactBonus
	}
	for _, region := range timezoneRegions {
		if strings.Contains(talent, region) && strings.Contains(wanted, region) {
			return timezoneRegionBonus
		}
	}
	return 0
}

// recencyBonus favors fresh postings. Jobs without a creation time get nothing.
func recencyBonus(createdAt time.Time, now time.Time) int {
	if createdAt.IsZero() {
		return 0
	}
	age := now.Sub(createdAt)
	switch {
	case age <= 3*24*time.Hour:
		return freshJobBonus
	case age <= 7*24*time.Hour:
		return recentJobBonus
	default:
		return 0
	}
}
