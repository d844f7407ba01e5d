package graph

import (
	"context"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/pkg/serverutils"

	graphql "github.com/graph-gophers/graphql-go"
)

// Arguments with schema defaults are always supplied, so they are not pointers.
type getNotesArgs struct {
	Page      int32
	Limit     int32
	SortBy    string
	UserId    *graphql.ID
	Saved     *bool
	Userliked *bool
}

func (r *Resolver) GetNotes(ctx context.Context, args getNotesArgs) (*notesResponseResolver, error) {
	viewerId, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	res, err := r.notes.GetNotes(ctx, viewerId, dto.ListNotesRequest{
		Page:   int(args.Page),
		Limit:  int(args.Limit),
		SortBy: dto.SortOrder(args.SortBy),
		UserId: idArg(args.UserId),
		Saved:  boolArg(args.Saved),
		Liked:  boolArg(args.Userliked),
	})
	if err != nil {
		return nil, r.fail("getNotes", err)
	}
	return &notesResponseResolver{res: res}, nil
}

type searchNotesArgs struct {
	SearchTerm string
	SearchBy   string
	Page       int32
	Limit      int32
}

func (r *Resolver) SearchNotes(ctx context.Context, args searchNotesArgs) (*notesResponseResolver, error) {
	viewerId, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	res, err := r.notes.SearchNotes(ctx, viewerId, dto.SearchNotesRequest{
		SearchTerm: args.SearchTerm,
		SearchBy:   dto.SearchField(args.SearchBy),
		Page:       int(args.Page),
		Limit:      int(args.Limit),
	})
	if err != nil {
		return nil, r.fail("searchNotes", err)
	}
	return &notesResponseResolver{res: res}, nil
}

type createNotesArgs struct {
	Title          string
	YoutubeUrl     string
	PdfUrl         string
	ContentCreater *string
	Thumbnail      *string
	ChannelName    *string
}

func (r *Resolver) CreateNotes(ctx context.Context, args createNotesArgs) (bool, error) {
	userId, err := requireViewer(ctx)
	if err != nil {
		return false, err
	}

	req := dto.CreateNoteRequest{
		Title:          args.Title,
		YoutubeUrl:     args.YoutubeUrl,
		PdfUrl:         args.PdfUrl,
		ContentCreator: args.ContentCreater,
		Thumbnail:      args.Thumbnail,
		ChannelName:    args.ChannelName,
	}.Normalize()
	if err := serverutils.ValidateRequest(req); err != nil {
		return false, r.fail("createNotes", err)
	}

	if _, err := r.notes.Create(ctx, userId, &req); err != nil {
		return false, r.fail("createNotes", err)
	}
	return true, nil
}

type likeNotesArgs struct {
	NoteId graphql.ID
	Liked  *bool
}

func (r *Resolver) LikeNotes(ctx context.Context, args likeNotesArgs) (bool, error) {
	userId, err := requireViewer(ctx)
	if err != nil {
		return false, err
	}
	noteId, err := parseID(string(args.NoteId))
	if err != nil {
		return false, err
	}

	// An omitted flag means like, as the clients send it on first tap.
	liked := args.Liked == nil || *args.Liked
	if err := r.interactions.Like(ctx, userId, noteId, liked); err != nil {
		return false, r.fail("likeNotes", err)
	}
	return true, nil
}

type saveNoteArgs struct {
	NoteId graphql.ID
	Saved  *bool
}

func (r *Resolver) SaveNote(ctx context.Context, args saveNoteArgs) (bool, error) {
	userId, err := requireViewer(ctx)
	if err != nil {
		return false, err
	}
	noteId, err := parseID(string(args.NoteId))
	if err != nil {
		return false, err
	}

	saved := args.Saved == nil || *args.Saved
	if err := r.interactions.Save(ctx, userId, noteId, saved); err != nil {
		return false, r.fail("saveNote", err)
	}
	return true, nil
}

type deleteNoteArgs struct {
	NoteId graphql.ID
}

func (r *Resolver) DeleteNote(ctx context.Context, args deleteNoteArgs) (bool, error) {
	userId, err := requireViewer(ctx)
	if err != nil {
		return false, err
	}
	noteId, err := parseID(string(args.NoteId))
	if err != nil {
		return false, err
	}

	if err := r.notes.Delete(ctx, userId, noteId); err != nil {
		return false, r.fail("deleteNote", err)
	}
	return true, nil
}

type viewNoteArgs struct {
	NoteId graphql.ID
	UserId *graphql.ID
}

func (r *Resolver) ViewNote(ctx context.Context, args viewNoteArgs) (bool, error) {
	viewerId, err := requireViewer(ctx)
	if err != nil {
		return false, err
	}
	noteId, err := parseID(string(args.NoteId))
	if err != nil {
		return false, err
	}

	if err := r.views.Record(ctx, viewerId, noteId, idArg(args.UserId)); err != nil {
		return false, r.fail("viewNote", err)
	}
	return true, nil
}

type notesResponseResolver struct {
	res *dto.NotesResponse
}

func (r *notesResponseResolver) Notes() []*noteResolver {
	out := make([]*noteResolver, len(r.res.Notes))
	for i := range r.res.Notes {
		out[i] = &noteResolver{note: &r.res.Notes[i]}
	}
	return out
}

func (r *notesResponseResolver) TotalCount() int32 {
	return int32(r.res.TotalCount)
}

func (r *notesResponseResolver) TotalPages() int32 {
	return int32(r.res.TotalPages)
}

func (r *notesResponseResolver) CurrentPage() int32 {
	return int32(r.res.CurrentPage)
}

func (r *notesResponseResolver) HasNextPage() bool {
	return r.res.HasNextPage
}

func (r *notesResponseResolver) HasPreviousPage() bool {
	return r.res.HasPreviousPage
}

type noteResolver struct {
	note *dto.NoteResponse
}

func (r *noteResolver) ID() graphql.ID {
	return graphql.ID(r.note.Id.String())
}

func (r *noteResolver) Title() string {
	return r.note.Title
}

func (r *noteResolver) YoutubeUrl() string {
	return r.note.YoutubeUrl
}

func (r *noteResolver) PdfUrl() string {
	return r.note.PdfUrl
}

func (r *noteResolver) UserId() graphql.ID {
	return graphql.ID(r.note.UserId)
}

func (r *noteResolver) LikesCount() int32 {
	return int32(r.note.LikesCount)
}

func (r *noteResolver) ViewsCount() int32 {
	return int32(r.note.ViewsCount)
}

func (r *noteResolver) ContentCreater() *string {
	return r.note.ContentCreator
}

func (r *noteResolver) Thumbnail() *string {
	return r.note.Thumbnail
}

func (r *noteResolver) ChannelName() *string {
	return r.note.ChannelName
}

func (r *noteResolver) CreatedAt() string {
	return isoTime(r.note.CreatedAt)
}

func (r *noteResolver) UpdatedAt() string {
	return isoTime(r.note.UpdatedAt)
}

func (r *noteResolver) LikedByMe() bool {
	return r.note.LikedByMe
}

func (r *noteResolver) SavedByMe() bool {
	return r.note.SavedByMe
}

func (r *noteResolver) User() *noteAuthorResolver {
	return &noteAuthorResolver{profilePic: r.note.AuthorProfilePic}
}

type noteAuthorResolver struct {
	profilePic *string
}

func (r *noteAuthorResolver) ProfilePic() *string {
	return r.profilePic
}
