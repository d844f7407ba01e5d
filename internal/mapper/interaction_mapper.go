package mapper

import (
	"studynotes-be/internal/entity"
	"studynotes-be/internal/model"
)

type InteractionMapper struct{}

func NewInteractionMapper() *InteractionMapper {
	return &InteractionMapper{}
}

func (m *InteractionMapper) LikeToEntity(l *model.Like) *entity.Like {
	if l == nil {
		return nil
	}
	return &entity.Like{
		Id:        l.Id,
		UserId:    l.UserId,
		NoteId:    l.NoteId,
		Liked:     l.Liked,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (m *InteractionMapper) LikeToModel(l *entity.Like) *model.Like {
	if l == nil {
		return nil
	}
	return &model.Like{
		Id:        l.Id,
		UserId:    l.UserId,
		NoteId:    l.NoteId,
		Liked:     l.Liked,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (m *InteractionMapper) SavedToModel(s *entity.SavedNote) *model.SavedNote {
	if s == nil {
		return nil
	}
	return &model.SavedNote{
		Id:        s.Id,
		UserId:    s.UserId,
		NoteId:    s.NoteId,
		CreatedAt: s.CreatedAt,
	}
}

func (m *InteractionMapper) ViewToModel(v *entity.View) *model.View {
	if v == nil {
		return nil
	}
	return &model.View{
		Id:        v.Id,
		UserId:    v.UserId,
		NoteId:    v.NoteId,
		CreatedAt: v.CreatedAt,
	}
}
