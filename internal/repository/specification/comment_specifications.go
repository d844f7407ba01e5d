package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopLevelComments struct{}

func (s TopLevelComments) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id IS NULL")
}

type RepliesTo struct {
	ParentID uuid.UUID
}

func (s RepliesTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id = ?", s.ParentID)
}
