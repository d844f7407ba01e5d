package service

import (
	"context"
	"fmt"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/entity"
	"studynotes-be/internal/listingcache"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/specification"
	"studynotes-be/internal/repository/unitofwork"
	"studynotes-be/pkg/events"
	"studynotes-be/pkg/search"

	"github.com/google/uuid"
)

type INoteService interface {
	GetNotes(ctx context.Context, viewerId string, req dto.ListNotesRequest) (*dto.NotesResponse, error)
	SearchNotes(ctx context.Context, viewerId string, req dto.SearchNotesRequest) (*dto.NotesResponse, error)
	Create(ctx context.Context, userId string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId string, noteId uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *listingcache.Cache
	events     eventEmitter
	logger     logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	cache *listingcache.Cache,
	eventPublisher events.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		cache:      cache,
		events:     eventEmitter{publisher: eventPublisher, logger: log},
		logger:     log,
	}
}

func (s *noteService) GetNotes(ctx context.Context, viewerId string, req dto.ListNotesRequest) (*dto.NotesResponse, error) {
	req = req.Normalize()
	filters := listingFilters(viewerId, req)

	page, err := listingcache.Fetch(ctx, s.cache, req, func(ctx context.Context) (*dto.NotePage, error) {
		return s.loadPage(ctx, filters, req.SortBy, req.Page, req.Limit)
	})
	if err != nil {
		return nil, err
	}

	return s.present(ctx, viewerId, page)
}

// listingFilters maps the request flags onto query specifications. Saved and
// liked apply to the requested user, or to the viewer when none is given.
// A user id on its own selects that user's authored notes.
func listingFilters(viewerId string, req dto.ListNotesRequest) []specification.Specification {
	subject := viewerId
	if req.UserId != nil {
		subject = *req.UserId
	}

	var filters []specification.Specification
	if req.Saved {
		filters = append(filters, specification.NoteSavedBy{UserID: subject})
	}
	if req.Liked {
		filters = append(filters, specification.NoteLikedBy{UserID: subject})
	}
	if req.UserId != nil && !req.Saved && !req.Liked {
		filters = append(filters, specification.NoteOwnedByUser{UserID: subject})
	}
	return filters
}

var searchFieldByOperator = map[string]dto.SearchField{
	"title":   dto.SearchByTitle,
	"creator": dto.SearchByCreator,
	"channel": dto.SearchByChannel,
	"url":     dto.SearchByURL,
}

func (s *noteService) SearchNotes(ctx context.Context, viewerId string, req dto.SearchNotesRequest) (*dto.NotesResponse, error) {
	req = req.Normalize()

	// A leading operator such as "/channel:" overrides searchBy.
	query := search.ParseQuery(req.SearchTerm)
	field := req.SearchBy
	if f, ok := searchFieldByOperator[query.Field]; ok {
		field = f
	}
	if query.Term == "" {
		return nil, apperror.ErrEmptySearchTerm
	}

	filters := []specification.Specification{
		specification.NoteSearch{Field: field, Term: query.Term},
	}
	page, err := s.loadPage(ctx, filters, dto.SortCreatedAtDesc, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	return s.present(ctx, viewerId, page)
}

func (s *noteService) loadPage(ctx context.Context, filters []specification.Specification, order dto.SortOrder, page, limit int) (*dto.NotePage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.NoteRepository().Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}

	specs := append(append([]specification.Specification{}, filters...),
		specification.NoteSort{Order: order},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	summaries := make([]dto.NoteSummary, len(notes))
	for i, note := range notes {
		summaries[i] = toNoteSummary(note)
	}
	return dto.NewNotePage(summaries, total, page, limit), nil
}

// present overlays the viewer's like/save flags and the authors' current
// profile pictures onto a viewer-independent page.
func (s *noteService) present(ctx context.Context, viewerId string, page *dto.NotePage) (*dto.NotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	noteIds := make([]uuid.UUID, len(page.Notes))
	authorSet := make(map[string]struct{})
	for i, note := range page.Notes {
		noteIds[i] = note.Id
		authorSet[note.UserId] = struct{}{}
	}

	liked, err := uow.LikeRepository().LikedNoteIDs(ctx, viewerId, noteIds)
	if err != nil {
		return nil, fmt.Errorf("load likes: %w", err)
	}
	saved, err := uow.SavedNoteRepository().SavedNoteIDs(ctx, viewerId, noteIds)
	if err != nil {
		return nil, fmt.Errorf("load saves: %w", err)
	}
	pictures, err := profilePictures(ctx, uow, authorSet)
	if err != nil {
		return nil, err
	}

	res := &dto.NotesResponse{
		Notes:           make([]dto.NoteResponse, len(page.Notes)),
		TotalCount:      page.TotalCount,
		TotalPages:      page.TotalPages,
		CurrentPage:     page.CurrentPage,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
	}
	for i, note := range page.Notes {
		res.Notes[i] = dto.NoteResponse{
			NoteSummary:      note,
			LikedByMe:        liked[note.Id],
			SavedByMe:        saved[note.Id],
			AuthorProfilePic: pictures[note.UserId],
		}
	}
	return res, nil
}

func profilePictures(ctx context.Context, uow unitofwork.UnitOfWork, userSet map[string]struct{}) (map[string]*string, error) {
	pictures := make(map[string]*string, len(userSet))
	if len(userSet) == 0 {
		return pictures, nil
	}
	ids := make([]string, 0, len(userSet))
	for id := range userSet {
		ids = append(ids, id)
	}
	users, err := uow.UserRepository().FindAll(ctx, specification.ByUserKeys{Ids: ids})
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	for _, user := range users {
		pictures[user.Id] = user.ProfilePic
	}
	return pictures, nil
}

func (s *noteService) Create(ctx context.Context, userId string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Id:             uuid.New(),
		Title:          req.Title,
		YoutubeUrl:     req.YoutubeUrl,
		PdfUrl:         req.PdfUrl,
		UserId:         userId,
		ContentCreator: req.ContentCreator,
		Thumbnail:      req.Thumbnail,
		ChannelName:    req.ChannelName,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.cache.Invalidate(ctx, events.NoteCreated)
	s.events.emit(ctx, events.NoteCreated, map[string]interface{}{
		"note_id": note.Id.String(),
		"user_id": userId,
		"title":   note.Title,
	})

	return &dto.NoteResponse{NoteSummary: toNoteSummary(&note)}, nil
}

func (s *noteService) Delete(ctx context.Context, userId string, noteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return fmt.Errorf("find note: %w", err)
	}
	if note == nil {
		return apperror.ErrNoteNotFound
	}
	if note.UserId != userId {
		return apperror.ErrForbidden
	}

	if err := uow.NoteRepository().Delete(ctx, noteId); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.cache.Invalidate(ctx, events.NoteDeleted)
	s.events.emit(ctx, events.NoteDeleted, map[string]interface{}{
		"note_id": noteId.String(),
		"user_id": userId,
	})
	return nil
}

func toNoteSummary(note *entity.Note) dto.NoteSummary {
	return dto.NoteSummary{
		Id:             note.Id,
		Title:          note.Title,
		YoutubeUrl:     note.YoutubeUrl,
		PdfUrl:         note.PdfUrl,
		UserId:         note.UserId,
		LikesCount:     note.LikesCount,
		ViewsCount:     note.ViewsCount,
		ContentCreator: note.ContentCreator,
		Thumbnail:      note.Thumbnail,
		ChannelName:    note.ChannelName,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
	}
}
