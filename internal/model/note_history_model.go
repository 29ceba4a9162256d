package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteHistory stores the content a note had immediately before an update.
// Rows are append-only; they are removed only when the note itself is deleted.
type NoteHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null"`
	UpdatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (NoteHistory) TableName() string {
	return "note_histories"
}
