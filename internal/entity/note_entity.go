package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id             uuid.UUID
	Title          string
	YoutubeUrl     string
	PdfUrl         string
	UserId         string
	LikesCount     int
	ViewsCount     int
	ContentCreator *string
	Thumbnail      *string
	ChannelName    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
