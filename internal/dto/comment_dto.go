package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Content  string     `json:"content" validate:"required,max=5000"`
	NoteId   uuid.UUID  `json:"note_id" validate:"required"`
	ParentId *uuid.UUID `json:"parent_id"`
}

type CommentResponse struct {
	Id             uuid.UUID       `json:"id"`
	Content        string          `json:"content"`
	AuthorId       string          `json:"author_id"`
	Author         *AuthorResponse `json:"author,omitempty"`
	NoteId         uuid.UUID       `json:"note_id"`
	ParentId       *uuid.UUID      `json:"parent_id,omitempty"`
	ReplyCount     int64           `json:"reply_count"`
	HasMoreReplies bool            `json:"has_more_replies"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
