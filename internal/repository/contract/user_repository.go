package contract

import (
	"context"

	"studynotes-be/internal/entity"
	"studynotes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	UpdateProfilePic(ctx context.Context, userId string, url string) error
	UpdateName(ctx context.Context, userId string, name string) error
}

type ProfileLinkRepository interface {
	Create(ctx context.Context, link *entity.ProfileLink) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfileLink, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProfileLink, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
