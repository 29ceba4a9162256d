package dto

import (
	"time"

	"shared-notes-be/internal/entity"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type ShareNoteRequest struct {
	Id         uuid.UUID
	SharedWith []string `json:"shared_with" validate:"required,min=1,dive,required"`
}

// NoteResponse mirrors the persisted note: owner id plus the ids of every
// user it is shared with.
type NoteResponse struct {
	Id         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  *time.Time  `json:"updated_at"`
	User       uuid.UUID   `json:"user"`
	SharedWith []uuid.UUID `json:"shared_with"`
}

func NewNoteResponse(n *entity.Note) *NoteResponse {
	sharedWith := n.SharedWith
	if sharedWith == nil {
		sharedWith = []uuid.UUID{}
	}
	return &NoteResponse{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		User:       n.UserId,
		SharedWith: sharedWith,
	}
}

type NoteHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Note      uuid.UUID `json:"note"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy uuid.UUID `json:"updated_by"`
}

func NewNoteHistoryResponse(h *entity.NoteHistory) *NoteHistoryResponse {
	return &NoteHistoryResponse{
		Id:        h.Id,
		Note:      h.NoteId,
		Content:   h.Content,
		UpdatedAt: h.UpdatedAt,
		UpdatedBy: h.UpdatedBy,
	}
}

func NewNoteHistoryResponses(histories []*entity.NoteHistory) []*NoteHistoryResponse {
	responses := make([]*NoteHistoryResponse, len(histories))
	for i, h := range histories {
		responses[i] = NewNoteHistoryResponse(h)
	}
	return responses
}
