package contract

import (
	"context"

	"studynotes-be/internal/entity"
	"studynotes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Counters
	AdjustLikesCount(ctx context.Context, id uuid.UUID, delta int) error
	IncrementViewsCount(ctx context.Context, id uuid.UUID) error
	SumCountersByAuthor(ctx context.Context, userId string) (likes int64, views int64, err error)
}
