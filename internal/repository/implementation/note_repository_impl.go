package implementation

import (
	"context"
	"errors"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/mapper"
	"shared-notes-be/internal/model"
	"shared-notes-be/internal/repository/contract"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) loadShares(ctx context.Context, noteId uuid.UUID) ([]*model.NoteShare, error) {
	var shares []*model.NoteShare
	if err := r.db.WithContext(ctx).Where("note_id = ?", noteId).Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m, nil)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	shares, err := r.loadShares(ctx, m.Id)
	if err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m, shares)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	shares, err := r.loadShares(ctx, m.Id)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m, shares), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	notes := make([]*entity.Note, len(models))
	for i, m := range models {
		shares, err := r.loadShares(ctx, m.Id)
		if err != nil {
			return nil, err
		}
		notes[i] = r.mapper.ToEntity(m, shares)
	}
	return notes, nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteRepositoryImpl) AddShare(ctx context.Context, noteId, userId uuid.UUID) error {
	share := model.NoteShare{
		Id:     uuid.New(),
		NoteId: noteId,
		UserId: userId,
	}
	// FirstOrCreate keeps the operation idempotent against the unique index.
	return r.db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", noteId, userId).
		FirstOrCreate(&share).Error
}

func (r *NoteRepositoryImpl) DeleteSharesByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteShare{}).Error
}
