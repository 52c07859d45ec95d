package events

import "time"

// Event is what crosses the bus between the API process and the
// notification dispatcher. Payloads are flat string maps so consumers never
// need the producer's types.
type Event interface {
	// EventType is the stable code, e.g. "inquiry.created".
	EventType() string

	Payload() map[string]interface{}

	Timestamp() time.Time
}

// BaseEvent backs every concrete event constructor in this package.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
