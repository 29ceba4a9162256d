// Package access decides what a caller may do with a note. Decisions are
// pure functions over the note entity and an explicit caller identity; no
// storage or request state is consulted.
package access

import (
	"shared-notes-be/internal/entity"

	"github.com/google/uuid"
)

type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// CanRead is true for the owner and for members of the shared-with set.
func (p *Policy) CanRead(callerId uuid.UUID, note *entity.Note) bool {
	if note == nil {
		return false
	}
	return note.UserId == callerId || note.IsSharedWith(callerId)
}

// CanEdit uses the same predicate as CanRead: any user a note is shared
// with may also edit it.
func (p *Policy) CanEdit(callerId uuid.UUID, note *entity.Note) bool {
	return p.CanRead(callerId, note)
}

// CanShare is owner-only. Shared users never gain rights over the share
// list itself.
func (p *Policy) CanShare(callerId uuid.UUID, note *entity.Note) bool {
	return note != nil && note.UserId == callerId
}

// CanDelete is owner-only, same as CanShare.
func (p *Policy) CanDelete(callerId uuid.UUID, note *entity.Note) bool {
	return note != nil && note.UserId == callerId
}
