package mapper

import (
	"studynotes-be/internal/entity"
	"studynotes-be/internal/model"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:        c.Id,
		Content:   c.Content,
		AuthorId:  c.AuthorId,
		NoteId:    c.NoteId,
		ParentId:  c.ParentId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:        c.Id,
		Content:   c.Content,
		AuthorId:  c.AuthorId,
		NoteId:    c.NoteId,
		ParentId:  c.ParentId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CommentMapper) ToEntities(comments []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, len(comments))
	for i, c := range comments {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
