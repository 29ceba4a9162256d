package events

import "time"

// Event defines the contract for everything published on the in-process
// bus. The concrete payload shape belongs to the publisher; consumers
// read the type code and timestamp through this interface.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}
