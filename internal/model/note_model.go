package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title          string         `gorm:"type:varchar(255);not null"`
	YoutubeUrl     string         `gorm:"type:text;not null"`
	PdfUrl         string         `gorm:"type:text;not null"`
	UserId         string         `gorm:"type:varchar(128);not null;index"`
	LikesCount     int            `gorm:"not null;default:0;index"`
	ViewsCount     int            `gorm:"not null;default:0"`
	ContentCreator *string        `gorm:"type:varchar(255)"`
	Thumbnail      *string        `gorm:"type:text"`
	ChannelName    *string        `gorm:"type:varchar(255)"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
