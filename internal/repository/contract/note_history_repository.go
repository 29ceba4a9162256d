package contract

import (
	"context"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteHistoryRepository interface {
	Create(ctx context.Context, history *entity.NoteHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
}
