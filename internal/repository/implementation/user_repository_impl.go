package implementation

import (
	"context"
	"errors"

	"studynotes-be/internal/entity"
	"studynotes-be/internal/mapper"
	"studynotes-be/internal/model"
	"studynotes-be/internal/repository/contract"
	"studynotes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) UpdateProfilePic(ctx context.Context, userId string, url string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Update("profile_pic", url).Error
}

func (r *UserRepositoryImpl) UpdateName(ctx context.Context, userId string, name string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Update("name", name).Error
}

type ProfileLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewProfileLinkRepository(db *gorm.DB) contract.ProfileLinkRepository {
	return &ProfileLinkRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *ProfileLinkRepositoryImpl) Create(ctx context.Context, link *entity.ProfileLink) error {
	if link.Id == uuid.Nil {
		link.Id = uuid.New()
	}
	m := r.mapper.LinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.LinkToEntity(m)
	return nil
}

func (r *ProfileLinkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfileLink, error) {
	var m model.ProfileLink
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ProfileLink{}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LinkToEntity(&m), nil
}

func (r *ProfileLinkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProfileLink, error) {
	var models []*model.ProfileLink
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ProfileLink{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	links := make([]*entity.ProfileLink, len(models))
	for i, m := range models {
		links[i] = r.mapper.LinkToEntity(m)
	}
	return links, nil
}

func (r *ProfileLinkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProfileLink{}, "id = ?", id).Error
}
