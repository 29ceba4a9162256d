package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID
	Title      string
	Content    string
	UserId     uuid.UUID
	SharedWith []uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// IsSharedWith reports whether userId is a member of the shared-with set.
// Ownership is not considered here; the access policy handles owners.
func (n *Note) IsSharedWith(userId uuid.UUID) bool {
	for _, id := range n.SharedWith {
		if id == userId {
			return true
		}
	}
	return false
}

type NoteHistory struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	Content   string
	UpdatedBy uuid.UUID
	UpdatedAt time.Time
}
