package core

import (
	"time"

	"github.com/google/uuid"
)

// EventKind discriminates what a room event carries.
type EventKind string

const (
	// EventChat is a message sent by a room participant.
	EventChat EventKind = "chat"
	// EventSystem is a membership notice emitted by the hub itself.
	EventSystem EventKind = "system"
	// EventNotification is injected by an external workflow via the gateway.
	EventNotification EventKind = "notification"
)

// SystemSender is the sender label on membership notices.
const SystemSender = "System"

// NoticeKind refines a system event: which membership change produced it.
// Empty for chat and notification events.
type NoticeKind string

const (
	// NoticeJoined marks a join notice.
	NoticeJoined NoticeKind = "joined"
	// NoticeLeft marks a leave notice.
	NoticeLeft NoticeKind = "left"
)

// Event is one immutable unit of room activity. Events are append-only:
// once recorded in a room's history they are never mutated or removed.
type Event struct {
	ID         string
	Room       string
	Kind       EventKind
	Notice     NoticeKind // set on system events only
	Sender     string
	Text       string
	AdvocateID string // set on notification events only
	CreatedAt  time.Time
}

func newEvent(room string, kind EventKind, sender, text string) Event {
	return Event{
		ID:        uuid.NewString(),
		Room:      room,
		Kind:      kind,
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
