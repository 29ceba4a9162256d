package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}

// NoteShare is the explicit join row backing a note's shared-with set.
// The composite unique index keeps membership duplicate-free.
type NoteShare struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_shares_note_user"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_shares_note_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteShare) TableName() string {
	return "note_shares"
}
