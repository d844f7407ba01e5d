package listingcache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/pkg/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls int
}

func (s *countingSource) compute(context.Context) (*dto.NotePage, error) {
	s.calls++
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(s.calls) * time.Minute)
	notes := []dto.NoteSummary{{
		Id:         uuid.New(),
		Title:      "Linear algebra",
		YoutubeUrl: "https://youtube.com/watch?v=abc",
		PdfUrl:     "https://files.example.com/la.pdf",
		UserId:     "author-1",
		LikesCount: s.calls,
		CreatedAt:  created,
		UpdatedAt:  created,
	}}
	return dto.NewNotePage(notes, 12, 1, DefaultPageSize), nil
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := store.NewRedisClient("redis://" + mr.Addr())
	t.Cleanup(func() { _ = client.Close() })
	return New(store.NewRedisStore(client), DefaultPolicy(), logger.NewNopLogger()), mr
}

func homePage(order dto.SortOrder) dto.ListNotesRequest {
	return dto.ListNotesRequest{Page: 1, Limit: DefaultPageSize, SortBy: order}
}

func TestFetchServesRepeatFromCache(t *testing.T) {
	cache, mr := newTestCache(t)
	src := &countingSource{}
	ctx := context.Background()

	first, err := Fetch(ctx, cache, homePage(dto.SortCreatedAtDesc), src.compute)
	require.NoError(t, err)
	second, err := Fetch(ctx, cache, homePage(dto.SortCreatedAtDesc), src.compute)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	assert.True(t, mr.Exists("notes:page:1:sort:CREATED_AT_DESC"))
}

func TestFetchBypassesIneligibleRequests(t *testing.T) {
	userId := "user-1"

	tests := []struct {
		name string
		req  dto.ListNotesRequest
	}{
		{"second page", dto.ListNotesRequest{Page: 2, Limit: DefaultPageSize, SortBy: dto.SortCreatedAtDesc}},
		{"author filter", dto.ListNotesRequest{Page: 1, Limit: DefaultPageSize, SortBy: dto.SortCreatedAtDesc, UserId: &userId}},
		{"saved filter", dto.ListNotesRequest{Page: 1, Limit: DefaultPageSize, SortBy: dto.SortTrendDesc, Saved: true}},
		{"liked filter", dto.ListNotesRequest{Page: 1, Limit: DefaultPageSize, SortBy: dto.SortCreatedAtAsc, Liked: true}},
		{"sort not allow-listed", dto.ListNotesRequest{Page: 1, Limit: DefaultPageSize, SortBy: dto.SortLikesDesc}},
		{"other page size", dto.ListNotesRequest{Page: 1, Limit: 12, SortBy: dto.SortCreatedAtDesc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, mr := newTestCache(t)
			src := &countingSource{}
			ctx := context.Background()

			for i := 0; i < 2; i++ {
				_, err := Fetch(ctx, cache, tt.req, src.compute)
				require.NoError(t, err)
			}

			assert.Equal(t, 2, src.calls)
			assert.Empty(t, mr.Keys())
		})
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	orders := []dto.SortOrder{dto.SortCreatedAtDesc, dto.SortTrendDesc, dto.SortCreatedAtAsc}
	sources := make(map[dto.SortOrder]*countingSource, len(orders))
	for _, order := range orders {
		sources[order] = &countingSource{}
		_, err := Fetch(ctx, cache, homePage(order), sources[order].compute)
		require.NoError(t, err)
	}
	assert.Len(t, mr.Keys(), len(orders))

	cache.Invalidate(ctx, "like")
	assert.Empty(t, mr.Keys())

	for _, order := range orders {
		_, err := Fetch(ctx, cache, homePage(order), sources[order].compute)
		require.NoError(t, err)
		assert.Equal(t, 2, sources[order].calls, order)
	}
}

func TestDefaultLimitIsCachedAndInvalidated(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	req := dto.ListNotesRequest{Page: 1, Limit: dto.DefaultPageSize, SortBy: dto.SortTrendDesc}
	home := &countingSource{}
	defaults := &countingSource{}

	for i := 0; i < 2; i++ {
		_, err := Fetch(ctx, cache, req, defaults.compute)
		require.NoError(t, err)
		_, err = Fetch(ctx, cache, homePage(dto.SortTrendDesc), home.compute)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, defaults.calls)
	assert.Equal(t, 1, home.calls)
	assert.True(t, mr.Exists("notes:page:1:sort:TREND_DESC:limit:10"))
	assert.True(t, mr.Exists("notes:page:1:sort:TREND_DESC"))

	cache.Invalidate(ctx, "create")
	assert.Empty(t, mr.Keys())
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	src := &countingSource{}
	ctx := context.Background()
	key := Key(1, dto.SortCreatedAtDesc)

	_, err := Fetch(ctx, cache, homePage(dto.SortCreatedAtDesc), src.compute)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, mr.TTL(key))

	mr.FastForward(301 * time.Second)
	assert.False(t, mr.Exists(key))

	_, err = Fetch(ctx, cache, homePage(dto.SortCreatedAtDesc), src.compute)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestTTLPerSortOrder(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	want := map[dto.SortOrder]time.Duration{
		dto.SortCreatedAtDesc: 300 * time.Second,
		dto.SortTrendDesc:     600 * time.Second,
		dto.SortCreatedAtAsc:  3600 * time.Second,
	}
	for order, ttl := range want {
		_, err := Fetch(ctx, cache, homePage(order), (&countingSource{}).compute)
		require.NoError(t, err)
		assert.Equal(t, ttl, mr.TTL(Key(1, order)), order)
	}
}

func TestUnreachableBackendFallsBack(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()
	src := &countingSource{}

	start := time.Now()
	page, err := Fetch(context.Background(), cache, homePage(dto.SortCreatedAtDesc), src.compute)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Len(t, page.Notes, 1)
	assert.Equal(t, int64(12), page.TotalCount)

	cache.Invalidate(context.Background(), "delete")
	assert.Less(t, time.Since(start), time.Second)
}

func TestCorruptEntryIsRecomputed(t *testing.T) {
	cache, mr := newTestCache(t)
	src := &countingSource{}
	key := Key(1, dto.SortTrendDesc)
	require.NoError(t, mr.Set(key, "{not json"))

	page, err := Fetch(context.Background(), cache, homePage(dto.SortTrendDesc), src.compute)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 1, page.CurrentPage)

	raw, err := mr.Get(key)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(raw)))
}

func TestComputeErrorIsNotCached(t *testing.T) {
	cache, mr := newTestCache(t)
	boom := errors.New("db down")

	_, err := Fetch(context.Background(), cache, homePage(dto.SortCreatedAtDesc), func(context.Context) (*dto.NotePage, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, mr.Keys())
}

func TestNilCacheComputes(t *testing.T) {
	src := &countingSource{}
	_, err := Fetch(context.Background(), nil, homePage(dto.SortCreatedAtDesc), src.compute)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	var cache *Cache
	cache.Invalidate(context.Background(), "create")
}

func TestMemoryStoreBackend(t *testing.T) {
	cache := New(store.NewMemoryStore(time.Minute), DefaultPolicy(), logger.NewNopLogger())
	src := &countingSource{}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := Fetch(ctx, cache, homePage(dto.SortCreatedAtAsc), src.compute)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, src.calls)
}
