package service

import (
	"context"
	"testing"
	"time"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/entity"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) seedComment(t *testing.T, noteId uuid.UUID, parentId *uuid.UUID, author, content string, age time.Duration) *entity.Comment {
	t.Helper()
	created := baseTime.Add(-age)
	c := &entity.Comment{
		Content:   content,
		AuthorId:  author,
		NoteId:    noteId,
		ParentId:  parentId,
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, e.uowFactory.NewUnitOfWork(context.Background()).CommentRepository().Create(context.Background(), c))
	return c
}

func TestFetchAllComments(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ben", "Ben", strPtr("https://img.example.com/ben.png"))
	note := env.seedNote(t, noteSeed{title: "Discussed", author: "ana"})
	otherNote := env.seedNote(t, noteSeed{title: "Quiet", author: "ana"})

	older := env.seedComment(t, note.Id, nil, "ben", "first!", 3*time.Hour)
	newer := env.seedComment(t, note.Id, nil, "ghost", "second", 2*time.Hour)
	env.seedComment(t, note.Id, &older.Id, "ana", "reply one", time.Hour)
	env.seedComment(t, note.Id, &older.Id, "ben", "reply two", 30*time.Minute)
	env.seedComment(t, otherNote.Id, nil, "ben", "elsewhere", 0)

	svc := NewCommentService(env.uowFactory, nil, env.log)
	comments, err := svc.FetchAll(context.Background(), note.Id)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, newer.Id, comments[0].Id)
	assert.Nil(t, comments[0].Author)
	assert.Equal(t, int64(0), comments[0].ReplyCount)
	assert.False(t, comments[0].HasMoreReplies)

	assert.Equal(t, older.Id, comments[1].Id)
	require.NotNil(t, comments[1].Author)
	assert.Equal(t, "Ben", comments[1].Author.Name)
	assert.Equal(t, int64(2), comments[1].ReplyCount)
	assert.True(t, comments[1].HasMoreReplies)

	replies, err := svc.FetchReplies(context.Background(), older.Id)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "reply one", replies[0].Content)
	assert.Equal(t, "reply two", replies[1].Content)
	assert.Equal(t, older.Id, *replies[0].ParentId)
}

func TestCreateComment(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ben", "Ben", nil)
	note := env.seedNote(t, noteSeed{title: "Discussed", author: "ana"})
	otherNote := env.seedNote(t, noteSeed{title: "Elsewhere", author: "ana"})
	foreign := env.seedComment(t, otherNote.Id, nil, "ana", "not here", 0)

	svc := NewCommentService(env.uowFactory, env.publisher, env.log)
	ctx := context.Background()

	top, err := svc.Create(ctx, "ben", &dto.CreateCommentRequest{Content: "Great notes", NoteId: note.Id})
	require.NoError(t, err)
	assert.Equal(t, "Ben", top.Author.Name)
	assert.Nil(t, top.ParentId)

	reply, err := svc.Create(ctx, "ben", &dto.CreateCommentRequest{Content: "Agreed", NoteId: note.Id, ParentId: &top.Id})
	require.NoError(t, err)
	assert.Equal(t, top.Id, *reply.ParentId)

	_, err = svc.Create(ctx, "ben", &dto.CreateCommentRequest{Content: "x", NoteId: note.Id, ParentId: &foreign.Id})
	assert.ErrorIs(t, err, apperror.ErrCommentNotFound)

	_, err = svc.Create(ctx, "ben", &dto.CreateCommentRequest{Content: "x", NoteId: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrNoteNotFound)

	assert.Equal(t, []string{events.CommentCreated, events.CommentCreated}, env.publisher.types())
}
