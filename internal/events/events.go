package events

import "github.com/talentgrid/matcher/internal/domain/models"

var MatchesComputedTopic = "MatchesComputedEvent"

type MatchesComputed struct {
	TalentID int64
	Results  []models.MatchResult
}

var JobsChangedTopic = "JobsChangedEvent"

// JobsChanged is published whenever the posting pool changes outside a match
// computation (new posting, cleaner pass). Cached match lists are stale after it.
type JobsChanged struct {
	AddedCount   int64
	ClosedCount  int64
	RemovedCount int64
}
