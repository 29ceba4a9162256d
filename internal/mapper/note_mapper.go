package mapper

import (
	"time"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/model"

	"github.com/google/uuid"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// ToEntity maps a stored note plus its share rows into the domain entity.
// The shared-with set travels with the note so permission checks never
// touch storage.
func (m *NoteMapper) ToEntity(n *model.Note, shares []*model.NoteShare) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	sharedWith := make([]uuid.UUID, 0, len(shares))
	for _, s := range shares {
		sharedWith = append(sharedWith, s.UserId)
	}

	return &entity.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		UserId:     n.UserId,
		SharedWith: sharedWith,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NoteMapper) HistoryToEntity(h *model.NoteHistory) *entity.NoteHistory {
	if h == nil {
		return nil
	}
	return &entity.NoteHistory{
		Id:        h.Id,
		NoteId:    h.NoteId,
		Content:   h.Content,
		UpdatedBy: h.UpdatedBy,
		UpdatedAt: h.UpdatedAt,
	}
}

func (m *NoteMapper) HistoryToModel(h *entity.NoteHistory) *model.NoteHistory {
	if h == nil {
		return nil
	}
	return &model.NoteHistory{
		Id:        h.Id,
		NoteId:    h.NoteId,
		Content:   h.Content,
		UpdatedBy: h.UpdatedBy,
		UpdatedAt: h.UpdatedAt,
	}
}

func (m *NoteMapper) HistoriesToEntities(histories []*model.NoteHistory) []*entity.NoteHistory {
	entities := make([]*entity.NoteHistory, len(histories))
	for i, h := range histories {
		entities[i] = m.HistoryToEntity(h)
	}
	return entities
}
