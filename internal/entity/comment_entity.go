package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Id        uuid.UUID
	Content   string
	AuthorId  string
	NoteId    uuid.UUID
	ParentId  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
