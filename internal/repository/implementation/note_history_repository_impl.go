package implementation

import (
	"context"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/mapper"
	"shared-notes-be/internal/model"
	"shared-notes-be/internal/repository/contract"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteHistoryRepository(db *gorm.DB) contract.NoteHistoryRepository {
	return &NoteHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteHistoryRepositoryImpl) Create(ctx context.Context, history *entity.NoteHistory) error {
	m := r.mapper.HistoryToModel(history)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*history = *r.mapper.HistoryToEntity(m)
	return nil
}

func (r *NoteHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteHistory, error) {
	var models []*model.NoteHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.HistoriesToEntities(models), nil
}

func (r *NoteHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteHistory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteHistoryRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteHistory{}).Error
}
