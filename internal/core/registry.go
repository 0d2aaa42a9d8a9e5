package core

import "sync"

// Registry maps room keys to live rooms. Rooms are created lazily on first
// use and persist for the life of the process. The map has its own lock so
// unrelated rooms never serialize through each other.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// GetOrCreate returns the room for key, creating an empty one on first use.
// Concurrent callers with the same key observe a single shared room.
func (reg *Registry) GetOrCreate(key string) (*Room, error) {
	if key == "" {
		return nil, InvalidArgument("room key must not be empty")
	}

	reg.mu.RLock()
	room, ok := reg.rooms[key]
	reg.mu.RUnlock()
	if ok {
		return room, nil
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if room, ok := reg.rooms[key]; ok {
		return room, nil
	}
	room = newRoom(key)
	reg.rooms[key] = room
	return room, nil
}

// History returns a snapshot of key's events. A room that has never been
// used yields an empty backlog without being created.
func (reg *Registry) History(key string) ([]Event, error) {
	if key == "" {
		return nil, InvalidArgument("room key must not be empty")
	}

	reg.mu.RLock()
	room, ok := reg.rooms[key]
	reg.mu.RUnlock()
	if !ok {
		return []Event{}, nil
	}
	return room.History(), nil
}
