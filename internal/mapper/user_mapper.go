package mapper

import (
	"studynotes-be/internal/entity"
	"studynotes-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		ProfilePic:   u.ProfilePic,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		ProfilePic:   u.ProfilePic,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) LinkToEntity(l *model.ProfileLink) *entity.ProfileLink {
	if l == nil {
		return nil
	}
	return &entity.ProfileLink{
		Id:        l.Id,
		UserId:    l.UserId,
		LinkName:  l.LinkName,
		LinkUrl:   l.LinkUrl,
		CreatedAt: l.CreatedAt,
	}
}

func (m *UserMapper) LinkToModel(l *entity.ProfileLink) *model.ProfileLink {
	if l == nil {
		return nil
	}
	return &model.ProfileLink{
		Id:        l.Id,
		UserId:    l.UserId,
		LinkName:  l.LinkName,
		LinkUrl:   l.LinkUrl,
		CreatedAt: l.CreatedAt,
	}
}
