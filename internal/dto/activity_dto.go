package dto

import (
	"time"

	"github.com/google/uuid"
)

// NoteActivityMessage is the payload published on the activity topic for
// every note lifecycle event. It satisfies events.Event.
type NoteActivityMessage struct {
	Event      string    `json:"event"`
	NoteId     uuid.UUID `json:"note_id"`
	UserId     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (m NoteActivityMessage) EventType() string {
	return m.Event
}

func (m NoteActivityMessage) Payload() map[string]interface{} {
	return map[string]interface{}{
		"note_id": m.NoteId.String(),
		"user_id": m.UserId.String(),
	}
}

func (m NoteActivityMessage) Timestamp() time.Time {
	return m.OccurredAt
}
