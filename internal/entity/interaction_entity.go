package entity

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	Id        uuid.UUID
	UserId    string
	NoteId    uuid.UUID
	Liked     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SavedNote struct {
	Id        uuid.UUID
	UserId    string
	NoteId    uuid.UUID
	CreatedAt time.Time
}

type View struct {
	Id        uuid.UUID
	UserId    string
	NoteId    uuid.UUID
	CreatedAt time.Time
}
