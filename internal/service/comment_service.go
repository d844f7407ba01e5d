package service

import (
	"context"
	"fmt"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/entity"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/specification"
	"studynotes-be/internal/repository/unitofwork"
	"studynotes-be/pkg/events"

	"github.com/google/uuid"
)

type ICommentService interface {
	FetchAll(ctx context.Context, noteId uuid.UUID) ([]*dto.CommentResponse, error)
	FetchReplies(ctx context.Context, parentId uuid.UUID) ([]*dto.CommentResponse, error)
	Create(ctx context.Context, authorId string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

type commentService struct {
	uowFactory unitofwork.RepositoryFactory
	events     eventEmitter
}

func NewCommentService(uowFactory unitofwork.RepositoryFactory, eventPublisher events.Publisher, log logger.ILogger) ICommentService {
	return &commentService{
		uowFactory: uowFactory,
		events:     eventEmitter{publisher: eventPublisher, logger: log},
	}
}

// FetchAll returns a note's top-level comments, newest first.
func (s *commentService) FetchAll(ctx context.Context, noteId uuid.UUID) ([]*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.TopLevelComments{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return s.present(ctx, uow, comments)
}

// FetchReplies returns the direct replies of a comment, oldest first.
func (s *commentService) FetchReplies(ctx context.Context, parentId uuid.UUID) ([]*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	replies, err := uow.CommentRepository().FindAll(ctx,
		specification.RepliesTo{ParentID: parentId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return s.present(ctx, uow, replies)
}

func (s *commentService) Create(ctx context.Context, authorId string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, fmt.Errorf("find note: %w", err)
	}
	if note == nil {
		return nil, apperror.ErrNoteNotFound
	}

	if req.ParentId != nil {
		parent, err := uow.CommentRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, fmt.Errorf("find parent comment: %w", err)
		}
		if parent == nil || parent.NoteId != req.NoteId {
			return nil, apperror.ErrCommentNotFound
		}
	}

	comment := entity.Comment{
		Content:  req.Content,
		AuthorId: authorId,
		NoteId:   req.NoteId,
		ParentId: req.ParentId,
	}
	if err := uow.CommentRepository().Create(ctx, &comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.events.emit(ctx, events.CommentCreated, map[string]interface{}{
		"comment_id": comment.Id.String(),
		"note_id":    comment.NoteId.String(),
		"author_id":  authorId,
		"note_owner": note.UserId,
		"is_reply":   comment.ParentId != nil,
	})

	res, err := s.present(ctx, uow, []*entity.Comment{&comment})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

func (s *commentService) present(ctx context.Context, uow unitofwork.UnitOfWork, comments []*entity.Comment) ([]*dto.CommentResponse, error) {
	ids := make([]uuid.UUID, len(comments))
	authorIds := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for i, c := range comments {
		ids[i] = c.Id
		if !seen[c.AuthorId] {
			seen[c.AuthorId] = true
			authorIds = append(authorIds, c.AuthorId)
		}
	}

	replyCounts, err := uow.CommentRepository().CountReplies(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count replies: %w", err)
	}

	authors := make(map[string]*entity.User)
	if len(authorIds) > 0 {
		users, err := uow.UserRepository().FindAll(ctx, specification.ByUserKeys{Ids: authorIds})
		if err != nil {
			return nil, fmt.Errorf("load authors: %w", err)
		}
		for _, u := range users {
			authors[u.Id] = u
		}
	}

	res := make([]*dto.CommentResponse, len(comments))
	for i, c := range comments {
		item := &dto.CommentResponse{
			Id:             c.Id,
			Content:        c.Content,
			AuthorId:       c.AuthorId,
			NoteId:         c.NoteId,
			ParentId:       c.ParentId,
			ReplyCount:     replyCounts[c.Id],
			HasMoreReplies: replyCounts[c.Id] > 0,
			CreatedAt:      c.CreatedAt,
			UpdatedAt:      c.UpdatedAt,
		}
		if author, ok := authors[c.AuthorId]; ok {
			item.Author = &dto.AuthorResponse{Name: author.Name, ProfilePic: author.ProfilePic}
		}
		res[i] = item
	}
	return res, nil
}
