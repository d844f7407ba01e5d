package service

import (
	"context"
	"fmt"

	"studynotes-be/internal/entity"
	"studynotes-be/internal/listingcache"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/specification"
	"studynotes-be/internal/repository/unitofwork"
	"studynotes-be/pkg/events"

	"github.com/google/uuid"
)

type IInteractionService interface {
	Like(ctx context.Context, userId string, noteId uuid.UUID, liked bool) error
	Save(ctx context.Context, userId string, noteId uuid.UUID, saved bool) error
}

type interactionService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *listingcache.Cache
	events     eventEmitter
	logger     logger.ILogger
}

func NewInteractionService(
	uowFactory unitofwork.RepositoryFactory,
	cache *listingcache.Cache,
	eventPublisher events.Publisher,
	log logger.ILogger,
) IInteractionService {
	return &interactionService{
		uowFactory: uowFactory,
		cache:      cache,
		events:     eventEmitter{publisher: eventPublisher, logger: log},
		logger:     log,
	}
}

// Like sets the user's like state. The note's counter only moves when the
// state actually changes, so repeating a like is a no-op.
func (s *interactionService) Like(ctx context.Context, userId string, noteId uuid.UUID, liked bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Serializes concurrent likes on the note so the like read below is current.
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId}, specification.ForUpdate{})
	if err != nil {
		return fmt.Errorf("find note: %w", err)
	}
	if note == nil {
		return apperror.ErrNoteNotFound
	}

	existing, err := uow.LikeRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByNoteID{NoteID: noteId},
	)
	if err != nil {
		return fmt.Errorf("find like: %w", err)
	}
	wasLiked := existing != nil && existing.Liked

	if err := uow.LikeRepository().Upsert(ctx, &entity.Like{
		UserId: userId,
		NoteId: noteId,
		Liked:  liked,
	}); err != nil {
		return fmt.Errorf("upsert like: %w", err)
	}

	if wasLiked != liked {
		delta := 1
		if !liked {
			delta = -1
		}
		if err := uow.NoteRepository().AdjustLikesCount(ctx, noteId, delta); err != nil {
			return fmt.Errorf("adjust likes count: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, events.NoteLiked)
	if wasLiked != liked {
		s.events.emit(ctx, events.NoteLiked, map[string]interface{}{
			"note_id":   noteId.String(),
			"user_id":   userId,
			"author_id": note.UserId,
			"liked":     liked,
		})
	}
	return nil
}

func (s *interactionService) Save(ctx context.Context, userId string, noteId uuid.UUID, saved bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return fmt.Errorf("find note: %w", err)
	}
	if note == nil {
		return apperror.ErrNoteNotFound
	}

	var changed bool
	if saved {
		changed, err = uow.SavedNoteRepository().Create(ctx, &entity.SavedNote{UserId: userId, NoteId: noteId})
	} else {
		changed, err = uow.SavedNoteRepository().Delete(ctx, userId, noteId)
	}
	if err != nil {
		return fmt.Errorf("save note: %w", err)
	}

	s.cache.Invalidate(ctx, events.NoteSaved)
	if changed {
		s.events.emit(ctx, events.NoteSaved, map[string]interface{}{
			"note_id":   noteId.String(),
			"user_id":   userId,
			"author_id": note.UserId,
			"saved":     saved,
		})
	}
	return nil
}
