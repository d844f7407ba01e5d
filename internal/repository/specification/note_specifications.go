package specification

import (
	"studynotes-be/internal/dto"

	"gorm.io/gorm"
)

type NoteOwnedByUser struct {
	UserID string
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

// NoteSavedBy keeps notes that UserID has bookmarked.
type NoteSavedBy struct {
	UserID string
}

func (s NoteSavedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.id IN (SELECT note_id FROM saved_notes WHERE user_id = ?)", s.UserID)
}

// NoteLikedBy keeps notes whose like record for UserID is currently set.
type NoteLikedBy struct {
	UserID string
}

func (s NoteLikedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.id IN (SELECT note_id FROM likes WHERE user_id = ? AND liked = ?)", s.UserID, true)
}

// NoteSort orders a listing. Every order ends on id so pages are stable.
type NoteSort struct {
	Order dto.SortOrder
}

func (s NoteSort) Apply(db *gorm.DB) *gorm.DB {
	switch s.Order {
	case dto.SortLikesDesc:
		return db.Order("notes.likes_count DESC").Order("notes.created_at DESC").Order("notes.id")
	case dto.SortLikesAsc:
		return db.Order("notes.likes_count ASC").Order("notes.created_at DESC").Order("notes.id")
	case dto.SortCreatedAtAsc:
		return db.Order("notes.created_at ASC").Order("notes.id")
	case dto.SortUpdatedAtDesc:
		return db.Order("notes.updated_at DESC").Order("notes.id")
	case dto.SortUpdatedAtAsc:
		return db.Order("notes.updated_at ASC").Order("notes.id")
	case dto.SortTitleAsc:
		return db.Order("notes.title ASC").Order("notes.id")
	case dto.SortTitleDesc:
		return db.Order("notes.title DESC").Order("notes.id")
	case dto.SortTrendDesc:
		return db.Order("(notes.likes_count * 2 + notes.views_count) DESC").Order("notes.created_at DESC").Order("notes.id")
	default:
		return db.Order("notes.created_at DESC").Order("notes.id")
	}
}
