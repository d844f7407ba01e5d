package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           string
	Name         string
	Email        string
	PasswordHash *string
	ProfilePic   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProfileLink struct {
	Id        uuid.UUID
	UserId    string
	LinkName  string
	LinkUrl   string
	CreatedAt time.Time
}
