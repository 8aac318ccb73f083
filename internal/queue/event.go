// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/caninesocial/canine-convention/internal/model"
)

// QueueName is the durable queue join confirmations travel on.
const QueueName = "event.joined"

// EventJoinedMessage is published after a join commits. It carries
// enough for downstream consumers to log or notify without querying the
// primary database.
type EventJoinedMessage struct {
	EventID   uint64 `json:"event_id"`
	Location  string `json:"location"`
	Attendees int    `json:"attendees"`
	DogID     uint64 `json:"dog_id"`
	DogName   string `json:"dog_name"`
	PersonID  uint64 `json:"person_id"`
	JoinedAt  string `json:"joined_at"`
}

// NewEventJoinedMessage builds the confirmation payload for a committed
// join, stamped with the current UTC time.
func NewEventJoinedMessage(ev *model.Event, dog *model.Dog) EventJoinedMessage {
	return EventJoinedMessage{
		EventID:   ev.ID,
		Location:  ev.Location,
		Attendees: ev.Attendees,
		DogID:     dog.ID,
		DogName:   dog.Name,
		PersonID:  dog.PersonID,
		JoinedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}
