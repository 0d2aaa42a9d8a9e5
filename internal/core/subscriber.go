package core

import "github.com/google/uuid"

// DefaultSubscriberBuffer bounds a subscriber's outbound queue when the
// caller does not choose a size.
const DefaultSubscriberBuffer = 16

// Subscriber is a live participant attached to at most one room. The hub
// does not own the connection behind it; it only pushes events into the
// bounded outbound queue.
type Subscriber struct {
	ID     string
	events chan Event
}

// NewSubscriber constructs a subscriber with a bounded event queue.
func NewSubscriber(buffer int) *Subscriber {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Subscriber{
		ID:     uuid.NewString(),
		events: make(chan Event, buffer),
	}
}

// Events yields broadcasts delivered to this subscriber.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// deliver enqueues without blocking. Returns false when the queue is full,
// in which case the event is dropped for this subscriber only.
func (s *Subscriber) deliver(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}
