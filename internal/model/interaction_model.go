package model

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_like_user_note"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_note;index"`
	Liked     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Like) TableName() string {
	return "likes"
}

type SavedNote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_saved_user_note"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_note;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SavedNote) TableName() string {
	return "saved_notes"
}

type View struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_view_user_note"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_view_user_note;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (View) TableName() string {
	return "views"
}
