package service

import (
	"context"
	"encoding/json"
	"fmt"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/internal/repository/specification"
	"studynotes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IViewService interface {
	// Record queues a view of noteId by the viewer. When userId is given it
	// must name the viewer.
	Record(ctx context.Context, viewerId string, noteId uuid.UUID, userId *string) error
}

type viewService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewViewService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IViewService {
	return &viewService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *viewService) Record(ctx context.Context, viewerId string, noteId uuid.UUID, userId *string) error {
	if userId != nil && *userId != "" && *userId != viewerId {
		return apperror.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return fmt.Errorf("find note: %w", err)
	}
	if note == nil {
		return apperror.ErrNoteNotFound
	}

	payload, err := json.Marshal(dto.PublishViewNoteMessage{
		NoteId: noteId,
		UserId: viewerId,
	})
	if err != nil {
		return err
	}

	return s.publisherService.Publish(ctx, payload)
}
