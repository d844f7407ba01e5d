package listingcache

import (
	"testing"
	"time"

	"studynotes-be/internal/config"
	"studynotes-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "notes:page:1:sort:TREND_DESC", Key(1, dto.SortTrendDesc))
}

func TestPolicyKeysCoverAllowList(t *testing.T) {
	assert.Equal(t, []string{
		"notes:page:1:sort:CREATED_AT_ASC",
		"notes:page:1:sort:CREATED_AT_ASC:limit:10",
		"notes:page:1:sort:CREATED_AT_DESC",
		"notes:page:1:sort:CREATED_AT_DESC:limit:10",
		"notes:page:1:sort:TREND_DESC",
		"notes:page:1:sort:TREND_DESC:limit:10",
	}, DefaultPolicy().Keys())
}

func TestPolicyCachesSchemaDefaultLimit(t *testing.T) {
	p := DefaultPolicy()

	ttl, ok := p.Cacheable(dto.ListNotesRequest{Page: 1, Limit: dto.DefaultPageSize, SortBy: dto.SortCreatedAtDesc})
	assert.True(t, ok)
	assert.Equal(t, 300*time.Second, ttl)
	assert.Equal(t, "notes:page:1:sort:CREATED_AT_DESC:limit:10", p.KeyFor(1, dto.DefaultPageSize, dto.SortCreatedAtDesc))
	assert.Equal(t, Key(1, dto.SortCreatedAtDesc), p.KeyFor(1, DefaultPageSize, dto.SortCreatedAtDesc))

	_, ok = p.Cacheable(dto.ListNotesRequest{Page: 1, Limit: 12, SortBy: dto.SortCreatedAtDesc})
	assert.False(t, ok)
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(config.CacheConfig{
		PageSize:  12,
		NewestTTL: 30 * time.Second,
	})

	assert.Equal(t, 12, p.PageSize)
	assert.Equal(t, 30*time.Second, p.TTLs[dto.SortCreatedAtDesc])
	assert.Equal(t, 600*time.Second, p.TTLs[dto.SortTrendDesc])
	assert.Equal(t, 3600*time.Second, p.TTLs[dto.SortCreatedAtAsc])

	ttl, ok := p.Cacheable(dto.ListNotesRequest{Page: 1, Limit: 12, SortBy: dto.SortCreatedAtDesc})
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, ttl)

	_, ok = p.Cacheable(dto.ListNotesRequest{Page: 1, Limit: DefaultPageSize, SortBy: dto.SortCreatedAtDesc})
	assert.False(t, ok)
}
