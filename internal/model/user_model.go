package model

import (
	"time"

	"github.com/google/uuid"
)

// User is keyed by the subject of the identity provider's token.
type User struct {
	Id           string    `gorm:"type:varchar(128);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	ProfilePic   *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type ProfileLink struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string    `gorm:"type:varchar(128);not null;index"`
	LinkName  string    `gorm:"type:varchar(100);not null"`
	LinkUrl   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ProfileLink) TableName() string {
	return "profile_links"
}
