package unitofwork

import (
	"context"

	"studynotes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileLinkRepository() contract.ProfileLinkRepository
	NoteRepository() contract.NoteRepository
	LikeRepository() contract.LikeRepository
	SavedNoteRepository() contract.SavedNoteRepository
	ViewRepository() contract.ViewRepository
	CommentRepository() contract.CommentRepository
}
