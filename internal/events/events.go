// Package events publishes domain change notifications.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event kinds.
const (
	TransactionCreated = "transaction.created"
	TransactionUpdated = "transaction.updated"
	TransactionDeleted = "transaction.deleted"
)

// Event is a lightweight change notification. Consumers fetch the full
// entity themselves if they need more than the id.
type Event struct {
	Kind       string    `json:"kind"`
	UserID     string    `json:"user_id"`
	ResourceID string    `json:"resource_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// New stamps an event with the current time.
func New(kind, userID, resourceID string) Event {
	return Event{
		Kind:       kind,
		UserID:     userID,
		ResourceID: resourceID,
		Timestamp:  time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event published by this package.
func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
