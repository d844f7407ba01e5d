package contract

import (
	"context"

	"studynotes-be/internal/entity"
	"studynotes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LikeRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Like, error)
	// Upsert writes the (user, note) like row, inserting it on first use.
	Upsert(ctx context.Context, like *entity.Like) error
	LikedNoteIDs(ctx context.Context, userId string, noteIds []uuid.UUID) (map[uuid.UUID]bool, error)
}

type SavedNoteRepository interface {
	// Create reports whether a row was inserted; an existing bookmark is left alone.
	Create(ctx context.Context, saved *entity.SavedNote) (bool, error)
	Delete(ctx context.Context, userId string, noteId uuid.UUID) (bool, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SavedNoteIDs(ctx context.Context, userId string, noteIds []uuid.UUID) (map[uuid.UUID]bool, error)
}

type ViewRepository interface {
	// CreateIfAbsent reports whether this is the first view of the note by the user.
	CreateIfAbsent(ctx context.Context, view *entity.View) (bool, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
