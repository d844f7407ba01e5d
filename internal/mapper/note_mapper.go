package mapper

import (
	"time"

	"studynotes-be/internal/entity"
	"studynotes-be/internal/model"

	"gorm.io/gorm"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var deletedAt *time.Time
	if n.DeletedAt.Valid {
		t := n.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Note{
		Id:             n.Id,
		Title:          n.Title,
		YoutubeUrl:     n.YoutubeUrl,
		PdfUrl:         n.PdfUrl,
		UserId:         n.UserId,
		LikesCount:     n.LikesCount,
		ViewsCount:     n.ViewsCount,
		ContentCreator: n.ContentCreator,
		Thumbnail:      n.Thumbnail,
		ChannelName:    n.ChannelName,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      n.DeletedAt.Valid,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if n.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *n.DeletedAt, Valid: true}
	} else if n.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.Note{
		Id:             n.Id,
		Title:          n.Title,
		YoutubeUrl:     n.YoutubeUrl,
		PdfUrl:         n.PdfUrl,
		UserId:         n.UserId,
		LikesCount:     n.LikesCount,
		ViewsCount:     n.ViewsCount,
		ContentCreator: n.ContentCreator,
		Thumbnail:      n.Thumbnail,
		ChannelName:    n.ChannelName,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
