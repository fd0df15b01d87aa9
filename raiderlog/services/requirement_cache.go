package services

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/database/repositories"
)

const requirementCacheSize = 64

// RequirementCache serves the read-mostly requirement reference data from an
// LRU keyed by expedition level. Only the public listing endpoints read
// through it; the advancer always reads inside its own transaction.
type RequirementCache struct {
	repo        repositories.RequirementRepository
	cache       *lru.Cache
	cacheExpiry time.Duration
}

type cachedRequirements struct {
	requirements []*models.ExpeditionRequirement
	cachedAt     time.Time
}

func NewRequirementCache(repo repositories.RequirementRepository, expiry time.Duration) *RequirementCache {
	cache, _ := lru.New(requirementCacheSize)
	return &RequirementCache{
		repo:        repo,
		cache:       cache,
		cacheExpiry: expiry,
	}
}

// ByLevel returns the authored requirements for one expedition level.
func (c *RequirementCache) ByLevel(ctx context.Context, level int) ([]*models.ExpeditionRequirement, error) {
	if entry, ok := c.cache.Get(level); ok {
		cached := entry.(cachedRequirements)
		if time.Since(cached.cachedAt) < c.cacheExpiry {
			return cached.requirements, nil
		}
		c.cache.Remove(level)
	}

	requirements, err := c.repo.GetByLevel(ctx, level)
	if err != nil {
		return nil, err
	}

	c.cache.Add(level, cachedRequirements{
		requirements: requirements,
		cachedAt:     time.Now(),
	})
	return requirements, nil
}

// Invalidate drops the cached rows for a level after an admin edit.
func (c *RequirementCache) Invalidate(level int) {
	c.cache.Remove(level)
}

// InvalidateAll drops everything, for bulk imports.
func (c *RequirementCache) InvalidateAll() {
	c.cache.Purge()
}
