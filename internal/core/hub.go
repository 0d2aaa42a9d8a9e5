package core

import "github.com/rs/zerolog"

// Hub is the broadcast engine shared by every connection and by the
// notification gateway. All three entry points (membership, chat,
// notifications) funnel into one append-and-broadcast path per room, so a
// room's events share a single total order.
type Hub struct {
	rooms *Registry
	log   *zerolog.Logger
}

// NewHub constructs a hub over the given registry. A nil logger disables
// logging.
func NewHub(rooms *Registry, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{rooms: rooms, log: logger}
}

// Join registers sub in the room and broadcasts a join notice to all
// current subscribers, the new one included. Membership has set semantics,
// but a notice is emitted on every call, even for an existing member.
func (h *Hub) Join(roomKey string, sub *Subscriber, displayName string) (Event, error) {
	room, err := h.rooms.GetOrCreate(roomKey)
	if err != nil {
		return Event{}, err
	}

	notice := newEvent(roomKey, EventSystem, SystemSender, displayName+" has joined the chat.")
	notice.Notice = NoticeJoined
	added, dropped := room.Join(sub, notice)
	if !added {
		h.log.Debug().Str("room", roomKey).Str("subscriber", sub.ID).Msg("join for existing member")
	}
	h.logDropped(roomKey, dropped)
	h.log.Debug().Str("room", roomKey).Str("user", displayName).Msg("subscriber joined")
	return notice, nil
}

// Leave removes sub from the room's delivery set before broadcasting the
// leave notice to the remaining subscribers. Leaving a room the subscriber
// is not in is a no-op for membership; the notice is still emitted.
func (h *Hub) Leave(roomKey string, sub *Subscriber, displayName string) (Event, error) {
	room, err := h.rooms.GetOrCreate(roomKey)
	if err != nil {
		return Event{}, err
	}

	notice := newEvent(roomKey, EventSystem, SystemSender, displayName+" has left the chat.")
	notice.Notice = NoticeLeft
	_, dropped := room.Leave(sub, notice)
	h.logDropped(roomKey, dropped)
	h.log.Debug().Str("room", roomKey).Str("user", displayName).Msg("subscriber left")
	return notice, nil
}

// Publish appends a new event to the room's history and delivers it to
// every current subscriber. An empty room key is an invalid_argument; an
// empty text is silently dropped and returns no event.
func (h *Hub) Publish(roomKey string, kind EventKind, sender, text string) (*Event, error) {
	if roomKey == "" {
		return nil, InvalidArgument("room key must not be empty")
	}
	if text == "" {
		return nil, nil
	}
	return h.publish(newEvent(roomKey, kind, sender, text))
}

// PublishNotification is the gateway's entry point: same delivery path as
// Publish, with the target advocate identity stamped on the event.
func (h *Hub) PublishNotification(roomKey, sender, text, advocateID string) (*Event, error) {
	if roomKey == "" {
		return nil, InvalidArgument("room key must not be empty")
	}
	if text == "" {
		return nil, nil
	}
	ev := newEvent(roomKey, EventNotification, sender, text)
	ev.AdvocateID = advocateID
	return h.publish(ev)
}

// History returns a snapshot of the room's backlog for initial render.
func (h *Hub) History(roomKey string) ([]Event, error) {
	return h.rooms.History(roomKey)
}

func (h *Hub) publish(ev Event) (*Event, error) {
	room, err := h.rooms.GetOrCreate(ev.Room)
	if err != nil {
		return nil, err
	}

	delivered, dropped := room.Publish(ev)
	h.logDropped(ev.Room, dropped)
	h.log.Debug().
		Str("room", ev.Room).
		Str("event_id", ev.ID).
		Str("kind", string(ev.Kind)).
		Int("delivered", delivered).
		Msg("event published")
	return &ev, nil
}

// Delivery failures are per-subscriber and never surface to the publisher.
func (h *Hub) logDropped(roomKey string, dropped int) {
	if dropped > 0 {
		h.log.Warn().Str("room", roomKey).Int("dropped", dropped).Msg("slow subscribers missed event")
	}
}
