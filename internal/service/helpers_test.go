package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/entity"
	"studynotes-be/internal/listingcache"
	"studynotes-be/internal/model"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/unitofwork"
	"studynotes-be/pkg/database"
	"studynotes-be/pkg/events"
	"studynotes-be/pkg/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.EventType()
	}
	return types
}

type testEnv struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	cache      *listingcache.Cache
	redis      *miniredis.Miniredis
	publisher  *recordingPublisher
	log        logger.ILogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	mr := miniredis.RunT(t)
	client := store.NewRedisClient("redis://" + mr.Addr())
	t.Cleanup(func() { _ = client.Close() })

	log := logger.NewNopLogger()
	return &testEnv{
		db:         db,
		uowFactory: unitofwork.NewRepositoryFactory(db),
		cache:      listingcache.New(store.NewRedisStore(client), listingcache.DefaultPolicy(), log),
		redis:      mr,
		publisher:  &recordingPublisher{},
		log:        log,
	}
}

func (e *testEnv) noteService() INoteService {
	return NewNoteService(e.uowFactory, e.cache, e.publisher, e.log)
}

func (e *testEnv) interactionService() IInteractionService {
	return NewInteractionService(e.uowFactory, e.cache, e.publisher, e.log)
}

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type noteSeed struct {
	title   string
	author  string
	likes   int
	views   int
	channel string
	age     time.Duration
}

// seedNote writes a note directly, bypassing services and cache invalidation.
func (e *testEnv) seedNote(t *testing.T, seed noteSeed) *entity.Note {
	t.Helper()
	created := baseTime.Add(-seed.age)
	note := &entity.Note{
		Title:      seed.title,
		YoutubeUrl: "https://youtube.com/watch?v=" + uuid.NewString()[:8],
		PdfUrl:     "https://files.example.com/" + uuid.NewString()[:8] + ".pdf",
		UserId:     seed.author,
		LikesCount: seed.likes,
		ViewsCount: seed.views,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	if seed.channel != "" {
		channel := seed.channel
		note.ChannelName = &channel
	}
	require.NoError(t, e.uowFactory.NewUnitOfWork(context.Background()).NoteRepository().Create(context.Background(), note))
	return note
}

func (e *testEnv) seedUser(t *testing.T, id, name string, pic *string) {
	t.Helper()
	require.NoError(t, e.uowFactory.NewUnitOfWork(context.Background()).UserRepository().Create(context.Background(), &entity.User{
		Id:         id,
		Name:       name,
		Email:      id + "@example.com",
		ProfilePic: pic,
	}))
}

func (e *testEnv) reloadNote(t *testing.T, id uuid.UUID) *model.Note {
	t.Helper()
	var m model.Note
	require.NoError(t, e.db.Unscoped().First(&m, "id = ?", id).Error)
	return &m
}

func noteTitles(res *dto.NotesResponse) []string {
	out := make([]string, len(res.Notes))
	for i, n := range res.Notes {
		out[i] = n.Title
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
