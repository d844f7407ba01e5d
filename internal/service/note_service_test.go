package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/listingcache"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeRequest(order dto.SortOrder) dto.ListNotesRequest {
	return dto.ListNotesRequest{Page: 1, Limit: listingcache.DefaultPageSize, SortBy: order}
}

func TestGetNotesSortOrders(t *testing.T) {
	env := newTestEnv(t)
	env.seedNote(t, noteSeed{title: "Calculus", author: "ana", likes: 5, views: 0, age: 3 * time.Hour})
	env.seedNote(t, noteSeed{title: "Algebra", author: "ben", likes: 1, views: 20, age: 2 * time.Hour})
	env.seedNote(t, noteSeed{title: "Biology", author: "ana", likes: 3, views: 1, age: time.Hour})

	svc := NewNoteService(env.uowFactory, nil, nil, env.log)
	ctx := context.Background()

	tests := []struct {
		order dto.SortOrder
		want  []string
	}{
		{dto.SortCreatedAtDesc, []string{"Biology", "Algebra", "Calculus"}},
		{dto.SortCreatedAtAsc, []string{"Calculus", "Algebra", "Biology"}},
		{dto.SortLikesDesc, []string{"Calculus", "Biology", "Algebra"}},
		{dto.SortLikesAsc, []string{"Algebra", "Biology", "Calculus"}},
		{dto.SortTitleAsc, []string{"Algebra", "Biology", "Calculus"}},
		{dto.SortTitleDesc, []string{"Calculus", "Biology", "Algebra"}},
		// scores: Algebra 22, Calculus 10, Biology 7
		{dto.SortTrendDesc, []string{"Algebra", "Calculus", "Biology"}},
		{"BOGUS", []string{"Biology", "Algebra", "Calculus"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			res, err := svc.GetNotes(ctx, "viewer", dto.ListNotesRequest{Page: 1, Limit: 10, SortBy: tt.order})
			require.NoError(t, err)
			assert.Equal(t, tt.want, noteTitles(res))
		})
	}
}

func TestGetNotesPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		env.seedNote(t, noteSeed{title: string(rune('A' + i)), author: "ana", age: time.Duration(i) * time.Minute})
	}
	svc := NewNoteService(env.uowFactory, nil, nil, env.log)

	res, err := svc.GetNotes(context.Background(), "viewer", dto.ListNotesRequest{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "D"}, noteTitles(res))
	assert.Equal(t, int64(5), res.TotalCount)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 2, res.CurrentPage)
	assert.True(t, res.HasNextPage)
	assert.True(t, res.HasPreviousPage)

	res, err = svc.GetNotes(context.Background(), "viewer", dto.ListNotesRequest{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Len(t, res.Notes, 1)
}

func TestGetNotesFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	mine := env.seedNote(t, noteSeed{title: "Mine", author: "viewer", age: 3 * time.Hour})
	other := env.seedNote(t, noteSeed{title: "Other", author: "ben", age: 2 * time.Hour})
	third := env.seedNote(t, noteSeed{title: "Third", author: "ben", age: time.Hour})

	interactions := env.interactionService()
	require.NoError(t, interactions.Save(ctx, "viewer", other.Id, true))
	require.NoError(t, interactions.Like(ctx, "viewer", third.Id, true))
	require.NoError(t, interactions.Like(ctx, "ben", mine.Id, true))
	require.NoError(t, interactions.Like(ctx, "ben", other.Id, true))
	require.NoError(t, interactions.Like(ctx, "ben", other.Id, false))

	svc := env.noteService()
	ben := "ben"

	tests := []struct {
		name string
		req  dto.ListNotesRequest
		want []string
	}{
		{"author", dto.ListNotesRequest{UserId: &ben}, []string{"Third", "Other"}},
		{"saved by viewer", dto.ListNotesRequest{Saved: true}, []string{"Other"}},
		{"liked by viewer", dto.ListNotesRequest{Liked: true}, []string{"Third"}},
		{"liked by named user", dto.ListNotesRequest{UserId: &ben, Liked: true}, []string{"Mine"}},
		{"saved by named user", dto.ListNotesRequest{UserId: &ben, Saved: true}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Page, tt.req.Limit = 1, listingcache.DefaultPageSize
			res, err := svc.GetNotes(ctx, "viewer", tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, noteTitles(res))
			assert.Equal(t, int64(len(tt.want)), res.TotalCount)
		})
	}
	assert.Empty(t, env.redis.Keys())
}

func TestGetNotesServesHomePageFromCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.noteService()
	env.seedNote(t, noteSeed{title: "First", author: "ana", age: time.Hour})

	first, err := svc.GetNotes(ctx, "viewer", homeRequest(dto.SortCreatedAtDesc))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalCount)

	// Written behind the service's back, so the cached page stays as it was.
	env.seedNote(t, noteSeed{title: "Sneaky", author: "ana"})
	second, err := svc.GetNotes(ctx, "viewer", homeRequest(dto.SortCreatedAtDesc))
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	_, err = svc.Create(ctx, "ana", &dto.CreateNoteRequest{
		Title:      "Third",
		YoutubeUrl: "https://youtube.com/watch?v=third",
		PdfUrl:     "https://files.example.com/third.pdf",
	})
	require.NoError(t, err)

	third, err := svc.GetNotes(ctx, "viewer", homeRequest(dto.SortCreatedAtDesc))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.TotalCount)
}

func TestGetNotesOverlaysViewerFlagsOnCachedPage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedUser(t, "ana", "Ana", strPtr("https://img.example.com/ana.png"))
	note := env.seedNote(t, noteSeed{title: "Shared", author: "ana"})

	require.NoError(t, env.interactionService().Like(ctx, "alice", note.Id, true))
	require.NoError(t, env.interactionService().Save(ctx, "alice", note.Id, true))

	svc := env.noteService()
	forAlice, err := svc.GetNotes(ctx, "alice", homeRequest(dto.SortTrendDesc))
	require.NoError(t, err)
	forBob, err := svc.GetNotes(ctx, "bob", homeRequest(dto.SortTrendDesc))
	require.NoError(t, err)

	assert.True(t, env.redis.Exists(listingcache.Key(1, dto.SortTrendDesc)))
	require.Len(t, forAlice.Notes, 1)
	require.Len(t, forBob.Notes, 1)

	assert.True(t, forAlice.Notes[0].LikedByMe)
	assert.True(t, forAlice.Notes[0].SavedByMe)
	assert.False(t, forBob.Notes[0].LikedByMe)
	assert.False(t, forBob.Notes[0].SavedByMe)
	assert.Equal(t, 1, forBob.Notes[0].LikesCount)
	assert.Equal(t, "https://img.example.com/ana.png", *forBob.Notes[0].AuthorProfilePic)
}

func TestMutationsInvalidateEveryCachedSortOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.noteService()
	interactions := env.interactionService()
	note := env.seedNote(t, noteSeed{title: "Target", author: "ana"})

	orders := []dto.SortOrder{dto.SortCreatedAtDesc, dto.SortTrendDesc, dto.SortCreatedAtAsc}
	warm := func() {
		for _, order := range orders {
			_, err := svc.GetNotes(ctx, "viewer", homeRequest(order))
			require.NoError(t, err)
		}
		require.Len(t, env.redis.Keys(), len(orders))
	}

	mutations := map[string]func() error{
		"like":   func() error { return interactions.Like(ctx, "viewer", note.Id, true) },
		"save":   func() error { return interactions.Save(ctx, "viewer", note.Id, true) },
		"delete": func() error { return svc.Delete(ctx, "ana", note.Id) },
	}
	for _, name := range []string{"like", "save", "delete"} {
		warm()
		require.NoError(t, mutations[name](), name)
		assert.Empty(t, env.redis.Keys(), name)
	}

	res, err := svc.GetNotes(ctx, "viewer", homeRequest(dto.SortCreatedAtDesc))
	require.NoError(t, err)
	assert.Empty(t, res.Notes)
}

func TestGetNotesSurvivesCacheOutage(t *testing.T) {
	env := newTestEnv(t)
	env.seedNote(t, noteSeed{title: "Still here", author: "ana"})
	env.redis.Close()

	res, err := env.noteService().GetNotes(context.Background(), "viewer", homeRequest(dto.SortCreatedAtDesc))
	require.NoError(t, err)
	assert.Equal(t, []string{"Still here"}, noteTitles(res))
}

func TestSearchNotes(t *testing.T) {
	env := newTestEnv(t)
	env.seedNote(t, noteSeed{title: "Intro to Graph Theory", author: "ana", channel: "MathDepot", age: 2 * time.Hour})
	env.seedNote(t, noteSeed{title: "Graphs II", author: "ana", age: time.Hour})
	env.seedNote(t, noteSeed{title: "Organic chemistry", author: "ben", channel: "ChemHub"})
	svc := env.noteService()
	ctx := context.Background()

	res, err := svc.SearchNotes(ctx, "viewer", dto.SearchNotesRequest{SearchTerm: "  GRAPH ", SearchBy: dto.SearchByTitle, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Graphs II", "Intro to Graph Theory"}, noteTitles(res))

	res, err = svc.SearchNotes(ctx, "viewer", dto.SearchNotesRequest{SearchTerm: "hub", SearchBy: dto.SearchByChannel, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Organic chemistry"}, noteTitles(res))

	res, err = svc.SearchNotes(ctx, "viewer", dto.SearchNotesRequest{SearchTerm: "100%", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Notes)

	res, err = svc.SearchNotes(ctx, "viewer", dto.SearchNotesRequest{SearchTerm: "/channel:mathdepot", SearchBy: dto.SearchByTitle, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro to Graph Theory"}, noteTitles(res))

	_, err = svc.SearchNotes(ctx, "viewer", dto.SearchNotesRequest{SearchTerm: "   "})
	assert.ErrorIs(t, err, apperror.ErrEmptySearchTerm)

	_, err = svc.SearchNotes(ctx, "viewer", dto.SearchNotesRequest{SearchTerm: "/title:  "})
	assert.ErrorIs(t, err, apperror.ErrEmptySearchTerm)

	assert.Empty(t, env.redis.Keys())
}

func TestCreateNote(t *testing.T) {
	env := newTestEnv(t)
	creator := "3Blue1Brown"

	res, err := env.noteService().Create(context.Background(), "ana", &dto.CreateNoteRequest{
		Title:          "Essence of calculus",
		YoutubeUrl:     "https://youtube.com/watch?v=WUvTyaaNkzM",
		PdfUrl:         "https://files.example.com/calc.pdf",
		ContentCreator: &creator,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana", res.UserId)
	assert.Equal(t, 0, res.LikesCount)
	assert.False(t, res.CreatedAt.IsZero())

	stored := env.reloadNote(t, res.Id)
	assert.Equal(t, "Essence of calculus", stored.Title)
	assert.Equal(t, creator, *stored.ContentCreator)
	assert.Equal(t, []string{events.NoteCreated}, env.publisher.types())
}

func TestDeleteNote(t *testing.T) {
	env := newTestEnv(t)
	svc := env.noteService()
	ctx := context.Background()
	note := env.seedNote(t, noteSeed{title: "Mine", author: "ana"})

	assert.ErrorIs(t, svc.Delete(ctx, "ben", note.Id), apperror.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, "ana", note.Id))
	assert.ErrorIs(t, svc.Delete(ctx, "ana", note.Id), apperror.ErrNoteNotFound)

	stored := env.reloadNote(t, note.Id)
	assert.True(t, stored.DeletedAt.Valid)
	assert.Equal(t, []string{events.NoteDeleted}, env.publisher.types())
}
