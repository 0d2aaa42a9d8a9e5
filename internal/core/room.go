package core

import "sync"

// Room groups subscribers and history for one channel. A room's history and
// subscriber set form one unit of mutual exclusion: append-and-broadcast for
// a single event never interleaves with another publish or a membership
// change on the same room. Different rooms share nothing.
type Room struct {
	Key string

	mu     sync.Mutex
	events []Event
	subs   map[*Subscriber]struct{}
}

func newRoom(key string) *Room {
	return &Room{
		Key:  key,
		subs: make(map[*Subscriber]struct{}),
	}
}

// Publish appends ev to history and broadcasts it to every current
// subscriber as one unit. Returns delivered and dropped counts.
func (r *Room) Publish(ev Event) (delivered, dropped int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.publishLocked(ev)
}

// Join adds sub to the membership set (a no-op for an existing member) and
// broadcasts the join notice to everyone, the new member included. Returns
// whether the subscriber was newly added.
func (r *Room) Join(sub *Subscriber, notice Event) (added bool, dropped int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subs[sub]; !exists {
		r.subs[sub] = struct{}{}
		added = true
	}
	_, dropped = r.publishLocked(notice)
	return added, dropped
}

// Leave removes sub before broadcasting the notice, so the leaver never
// receives its own leave event. Removing an absent subscriber is a no-op;
// the notice is emitted either way.
func (r *Room) Leave(sub *Subscriber, notice Event) (removed bool, dropped int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subs[sub]; exists {
		delete(r.subs, sub)
		removed = true
	}
	_, dropped = r.publishLocked(notice)
	return removed, dropped
}

// History returns a snapshot copy of the room's events.
func (r *Room) History() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Empty returns true if no subscribers are in the room.
func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs) == 0
}

func (r *Room) publishLocked(ev Event) (delivered, dropped int) {
	r.events = append(r.events, ev)
	for sub := range r.subs {
		if sub.deliver(ev) {
			delivered++
		} else {
			dropped++
		}
	}
	return delivered, dropped
}
