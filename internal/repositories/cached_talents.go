package repositories

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/talentgrid/matcher/internal/domain/models"
)

type talentReader interface {
	GetSkills(ctx context.Context, id int64) ([]string, error)
	GetProfile(ctx context.Context, id int64) (*models.TalentProfile, error)
}

// CachedTalents memoizes skill and profile lookups; talent data changes far
// less often than matches are requested.
type CachedTalents struct {
	repo  talentReader
	cache *gocache.Cache
}

func NewCachedTalents(repo talentReader) *CachedTalents {
	return &CachedTalents{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedTalents) GetSkills(ctx context.Context, id int64) ([]string, error) {
	key := "skills:" + strconv.FormatInt(id, 10)
	if value, found := c.cache.Get(key); found {
		return value.([]string), nil
	}

	skills, err := c.repo.GetSkills(ctx, id)
	if err == nil {
		if err = c.cache.Add(key, skills, gocache.DefaultExpiration); err != nil {
			return skills, err
		}
	}

	return skills, err
}

func (c *CachedTalents) GetProfile(ctx context.Context, id int64) (*models.TalentProfile, error) {
	key := "profile:" + strconv.FormatInt(id, 10)
	if value, found := c.cache.Get(key); found {
		return value.(*models.TalentProfile), nil
	}

	profile, err := c.repo.GetProfile(ctx, id)
	if err == nil {
		if err = c.cache.Add(key, profile, gocache.DefaultExpiration); err != nil {
			return profile, err
		}
	}

	return profile, err
}

func (c *CachedTalents) Invalidate(id int64) {
	c.cache.Delete("skills:" + strconv.FormatInt(id, 10))
	c.cache.Delete("profile:" + strconv.FormatInt(id, 10))
}
