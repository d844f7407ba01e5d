package implementation

import (
	"context"
	"errors"

	"studynotes-be/internal/entity"
	"studynotes-be/internal/mapper"
	"studynotes-be/internal/model"
	"studynotes-be/internal/repository/contract"
	"studynotes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var userNoteColumns = []clause.Column{{Name: "user_id"}, {Name: "note_id"}}

type LikeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InteractionMapper
}

func NewLikeRepository(db *gorm.DB) contract.LikeRepository {
	return &LikeRepositoryImpl{
		db:     db,
		mapper: mapper.NewInteractionMapper(),
	}
}

func (r *LikeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Like, error) {
	var m model.Like
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Like{}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LikeToEntity(&m), nil
}

func (r *LikeRepositoryImpl) Upsert(ctx context.Context, like *entity.Like) error {
	if like.Id == uuid.Nil {
		like.Id = uuid.New()
	}
	m := r.mapper.LikeToModel(like)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   userNoteColumns,
		DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
	}).Create(m).Error
}

func (r *LikeRepositoryImpl) LikedNoteIDs(ctx context.Context, userId string, noteIds []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool)
	if userId == "" || len(noteIds) == 0 {
		return liked, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND note_id IN ? AND liked = ?", userId, noteIds, true).
		Pluck("note_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

type SavedNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InteractionMapper
}

func NewSavedNoteRepository(db *gorm.DB) contract.SavedNoteRepository {
	return &SavedNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewInteractionMapper(),
	}
}

func (r *SavedNoteRepositoryImpl) Create(ctx context.Context, saved *entity.SavedNote) (bool, error) {
	if saved.Id == uuid.Nil {
		saved.Id = uuid.New()
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   userNoteColumns,
		DoNothing: true,
	}).Create(r.mapper.SavedToModel(saved))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SavedNoteRepositoryImpl) Delete(ctx context.Context, userId string, noteId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND note_id = ?", userId, noteId).
		Delete(&model.SavedNote{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SavedNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.SavedNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SavedNoteRepositoryImpl) SavedNoteIDs(ctx context.Context, userId string, noteIds []uuid.UUID) (map[uuid.UUID]bool, error) {
	saved := make(map[uuid.UUID]bool)
	if userId == "" || len(noteIds) == 0 {
		return saved, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.SavedNote{}).
		Where("user_id = ? AND note_id IN ?", userId, noteIds).
		Pluck("note_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		saved[id] = true
	}
	return saved, nil
}

type ViewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InteractionMapper
}

func NewViewRepository(db *gorm.DB) contract.ViewRepository {
	return &ViewRepositoryImpl{
		db:     db,
		mapper: mapper.NewInteractionMapper(),
	}
}

func (r *ViewRepositoryImpl) CreateIfAbsent(ctx context.Context, view *entity.View) (bool, error) {
	if view.Id == uuid.Nil {
		view.Id = uuid.New()
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   userNoteColumns,
		DoNothing: true,
	}).Create(r.mapper.ViewToModel(view))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ViewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.View{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
