package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Content   string     `gorm:"type:text;not null"`
	AuthorId  string     `gorm:"type:varchar(128);not null;index"`
	NoteId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentId  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
