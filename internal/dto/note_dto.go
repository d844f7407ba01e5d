package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type SortOrder string

const (
	SortLikesDesc     SortOrder = "LIKES_DESC"
	SortLikesAsc      SortOrder = "LIKES_ASC"
	SortCreatedAtDesc SortOrder = "CREATED_AT_DESC"
	SortCreatedAtAsc  SortOrder = "CREATED_AT_ASC"
	SortUpdatedAtDesc SortOrder = "UPDATED_AT_DESC"
	SortUpdatedAtAsc  SortOrder = "UPDATED_AT_ASC"
	SortTitleAsc      SortOrder = "TITLE_ASC"
	SortTitleDesc     SortOrder = "TITLE_DESC"
	SortTrendDesc     SortOrder = "TREND_DESC"
)

var sortOrders = map[SortOrder]struct{}{
	SortLikesDesc: {}, SortLikesAsc: {},
	SortCreatedAtDesc: {}, SortCreatedAtAsc: {},
	SortUpdatedAtDesc: {}, SortUpdatedAtAsc: {},
	SortTitleAsc: {}, SortTitleDesc: {},
	SortTrendDesc: {},
}

// ParseSortOrder falls back to newest first for unknown values.
func ParseSortOrder(s string) SortOrder {
	order := SortOrder(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := sortOrders[order]; ok {
		return order
	}
	return SortCreatedAtDesc
}

type SearchField string

const (
	SearchByTitle   SearchField = "TITLE"
	SearchByCreator SearchField = "CREATOR"
	SearchByChannel SearchField = "CHANNEL"
	SearchByURL     SearchField = "URL"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

type ListNotesRequest struct {
	Page   int
	Limit  int
	SortBy SortOrder
	UserId *string // author, or subject of Saved/Liked
	Saved  bool
	Liked  bool
}

// Normalize clamps paging and resolves the sort order.
func (r ListNotesRequest) Normalize() ListNotesRequest {
	r.Page, r.Limit = clampPaging(r.Page, r.Limit)
	r.SortBy = ParseSortOrder(string(r.SortBy))
	if r.UserId != nil && strings.TrimSpace(*r.UserId) == "" {
		r.UserId = nil
	}
	return r
}

func (r ListNotesRequest) HasFilters() bool {
	return r.UserId != nil || r.Saved || r.Liked
}

func (r ListNotesRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

type SearchNotesRequest struct {
	SearchTerm string
	SearchBy   SearchField
	Page       int
	Limit      int
}

func (r SearchNotesRequest) Normalize() SearchNotesRequest {
	r.Page, r.Limit = clampPaging(r.Page, r.Limit)
	r.SearchTerm = strings.TrimSpace(r.SearchTerm)
	switch r.SearchBy {
	case SearchByTitle, SearchByCreator, SearchByChannel, SearchByURL:
	default:
		r.SearchBy = SearchByTitle
	}
	return r
}

func clampPaging(page, limit int) (int, int) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return page, limit
}

// NoteSummary is the viewer-independent part of a listed note.
type NoteSummary struct {
	Id             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	YoutubeUrl     string    `json:"youtube_url"`
	PdfUrl         string    `json:"pdf_url"`
	UserId         string    `json:"user_id"`
	LikesCount     int       `json:"likes_count"`
	ViewsCount     int       `json:"views_count"`
	ContentCreator *string   `json:"content_creator,omitempty"`
	Thumbnail      *string   `json:"thumbnail,omitempty"`
	ChannelName    *string   `json:"channel_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NotePage is what the listing cache stores.
type NotePage struct {
	Notes           []NoteSummary `json:"notes"`
	TotalCount      int64         `json:"total_count"`
	TotalPages      int           `json:"total_pages"`
	CurrentPage     int           `json:"current_page"`
	HasNextPage     bool          `json:"has_next_page"`
	HasPreviousPage bool          `json:"has_previous_page"`
}

// NewNotePage computes pagination metadata for one page of notes.
func NewNotePage(notes []NoteSummary, totalCount int64, page, limit int) *NotePage {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalCount + int64(limit) - 1) / int64(limit))
	}
	if notes == nil {
		notes = []NoteSummary{}
	}
	return &NotePage{
		Notes:           notes,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		CurrentPage:     page,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

type NoteResponse struct {
	NoteSummary
	LikedByMe        bool    `json:"liked_by_me"`
	SavedByMe        bool    `json:"saved_by_me"`
	AuthorProfilePic *string `json:"author_profile_pic,omitempty"`
}

type NotesResponse struct {
	Notes           []NoteResponse `json:"notes"`
	TotalCount      int64          `json:"total_count"`
	TotalPages      int            `json:"total_pages"`
	CurrentPage     int            `json:"current_page"`
	HasNextPage     bool           `json:"has_next_page"`
	HasPreviousPage bool           `json:"has_previous_page"`
}

type CreateNoteRequest struct {
	Title          string  `json:"title" validate:"required,max=255"`
	YoutubeUrl     string  `json:"youtube_url" validate:"required,url"`
	PdfUrl         string  `json:"pdf_url" validate:"required,url"`
	ContentCreator *string `json:"content_creator" validate:"omitempty,max=255"`
	Thumbnail      *string `json:"thumbnail" validate:"omitempty,url"`
	ChannelName    *string `json:"channel_name" validate:"omitempty,max=255"`
}

type PublishViewNoteMessage struct {
	NoteId uuid.UUID `json:"note_id"`
	UserId string    `json:"user_id"`
}

// Normalize trims every field and turns blank optionals into nil.
func (r CreateNoteRequest) Normalize() CreateNoteRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.YoutubeUrl = strings.TrimSpace(r.YoutubeUrl)
	r.PdfUrl = strings.TrimSpace(r.PdfUrl)
	r.ContentCreator = trimOptional(r.ContentCreator)
	r.Thumbnail = trimOptional(r.Thumbnail)
	r.ChannelName = trimOptional(r.ChannelName)
	return r
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
