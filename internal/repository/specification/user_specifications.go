package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserKey struct {
	Id string
}

func (s ByUserKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.Id)
}

type ByUserKeys struct {
	Ids []string
}

func (s ByUserKeys) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.Ids)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?)", s.Email)
}

type ProfileLinkOwnedBy struct {
	LinkID uuid.UUID
	UserID string
}

func (s ProfileLinkOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ? AND user_id = ?", s.LinkID, s.UserID)
}
