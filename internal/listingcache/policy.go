package listingcache

import (
	"fmt"
	"sort"
	"time"

	"studynotes-be/internal/config"
	"studynotes-be/internal/dto"
)

const DefaultPageSize = 9

// Policy decides which listing requests are cached and for how long.
type Policy struct {
	// PageSize is the home page size; its keys do not encode the limit.
	PageSize int
	// ExtraPageSizes are also cached, under keys that carry the limit.
	ExtraPageSizes []int
	TTLs           map[dto.SortOrder]time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		PageSize:       DefaultPageSize,
		ExtraPageSizes: []int{dto.DefaultPageSize},
		TTLs: map[dto.SortOrder]time.Duration{
			dto.SortCreatedAtDesc: 300 * time.Second,
			dto.SortTrendDesc:     600 * time.Second,
			dto.SortCreatedAtAsc:  3600 * time.Second,
		},
	}
}

func PolicyFromConfig(cfg config.CacheConfig) Policy {
	p := DefaultPolicy()
	if cfg.PageSize > 0 {
		p.PageSize = cfg.PageSize
	}
	overrides := map[dto.SortOrder]time.Duration{
		dto.SortCreatedAtDesc: cfg.NewestTTL,
		dto.SortTrendDesc:     cfg.TrendingTTL,
		dto.SortCreatedAtAsc:  cfg.OldestTTL,
	}
	for order, ttl := range overrides {
		if ttl > 0 {
			p.TTLs[order] = ttl
		}
	}
	return p
}

func Key(page int, order dto.SortOrder) string {
	return fmt.Sprintf("notes:page:%d:sort:%s", page, order)
}

// KeyFor returns the key a listing of the given shape is stored under.
func (p Policy) KeyFor(page, limit int, order dto.SortOrder) string {
	if limit == p.PageSize {
		return Key(page, order)
	}
	return fmt.Sprintf("%s:limit:%d", Key(page, order), limit)
}

func (p Policy) pageSizes() []int {
	sizes := []int{p.PageSize}
	for _, size := range p.ExtraPageSizes {
		if size > 0 && size != p.PageSize {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

func (p Policy) cachesLimit(limit int) bool {
	for _, size := range p.pageSizes() {
		if size == limit {
			return true
		}
	}
	return false
}

// Cacheable reports whether q is served from cache and with which TTL.
// q must already be normalized.
func (p Policy) Cacheable(q dto.ListNotesRequest) (time.Duration, bool) {
	if q.Page != 1 || !p.cachesLimit(q.Limit) || q.HasFilters() {
		return 0, false
	}
	ttl, ok := p.TTLs[q.SortBy]
	return ttl, ok
}

// Keys lists every key the policy can write.
func (p Policy) Keys() []string {
	sizes := p.pageSizes()
	keys := make([]string, 0, len(p.TTLs)*len(sizes))
	for order := range p.TTLs {
		for _, size := range sizes {
			keys = append(keys, p.KeyFor(1, size, order))
		}
	}
	sort.Strings(keys)
	return keys
}
