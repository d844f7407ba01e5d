// Package listingcache caches the first page of hot note listings.
package listingcache

import (
	"context"
	"encoding/json"
	"errors"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/pkg/store"
)

const logModule = "ListingCache"

type Cache struct {
	store  store.Store
	policy Policy
	logger logger.ILogger
}

func New(s store.Store, policy Policy, log logger.ILogger) *Cache {
	return &Cache{
		store:  s,
		policy: policy,
		logger: log,
	}
}

func (c *Cache) Policy() Policy {
	return c.policy
}

// Fetch serves q from the cache when eligible and otherwise runs compute.
// Cache errors are logged and never returned; a nil cache always computes.
func Fetch[T any](ctx context.Context, c *Cache, q dto.ListNotesRequest, compute func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return compute(ctx)
	}
	ttl, ok := c.policy.Cacheable(q)
	if !ok {
		return compute(ctx)
	}

	key := c.policy.KeyFor(q.Page, q.Limit, q.SortBy)
	if cached, ok := c.lookup(ctx, key); ok {
		var out T
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
		c.logger.Warn(logModule, "Discarding undecodable cache entry", map[string]interface{}{
			"key": key,
		})
	}

	result, err := compute(ctx)
	if err != nil {
		return result, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn(logModule, "Failed to encode listing", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return result, nil
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		c.logger.Warn(logModule, "Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return result, nil
}

func (c *Cache) lookup(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrCacheMiss) {
			c.logger.Warn(logModule, "Cache read failed, computing directly", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	return raw, true
}

// Invalidate drops every cacheable listing. Failures are logged only.
func (c *Cache) Invalidate(ctx context.Context, reason string) {
	if c == nil {
		return
	}
	keys := c.policy.Keys()
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.Warn(logModule, "Cache invalidation failed", map[string]interface{}{
			"reason": reason,
			"keys":   keys,
			"error":  err.Error(),
		})
		return
	}
	c.logger.Debug(logModule, "Listing cache invalidated", map[string]interface{}{
		"reason": reason,
	})
}
