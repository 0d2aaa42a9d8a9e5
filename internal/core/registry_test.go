package core

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistryGetOrCreateIdempotent(t *testing.T) {
	reg := NewRegistry()

	a, err := reg.GetOrCreate("general")
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	b, err := reg.GetOrCreate("general")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if a != b {
		t.Fatal("same key must return the same room instance")
	}
}

func TestRegistryEmptyKey(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.GetOrCreate("")
	var ce *CoreError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}

	if _, err := reg.History(""); err == nil {
		t.Fatal("history with empty key must fail")
	}
}

func TestRegistryConcurrentGetOrCreateSingleInstance(t *testing.T) {
	reg := NewRegistry()

	const callers = 32
	rooms := make([]*Room, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room, err := reg.GetOrCreate("contested")
			if err != nil {
				t.Errorf("get: %v", err)
				return
			}
			rooms[i] = room
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if rooms[i] != rooms[0] {
			t.Fatal("concurrent callers observed different room instances")
		}
	}
}

func TestRegistryHistorySnapshotIsACopy(t *testing.T) {
	reg := NewRegistry()
	room, err := reg.GetOrCreate("general")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	room.Publish(newEvent("general", EventChat, "Alice", "one"))

	snap, err := reg.History("general")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("expected one event, got %d", len(snap))
	}

	// Mutating the snapshot must not touch the room.
	snap[0].Text = "tampered"
	again, _ := reg.History("general")
	if again[0].Text != "one" {
		t.Fatal("history snapshot leaked the backing slice")
	}
}

func TestRegistryHistoryUnknownRoomDoesNotCreate(t *testing.T) {
	reg := NewRegistry()

	snap, err := reg.History("ghost")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(snap) != 0 {
		t.Fatalf("expected empty backlog, got %+v", snap)
	}

	reg.mu.RLock()
	_, created := reg.rooms["ghost"]
	reg.mu.RUnlock()
	if created {
		t.Fatal("read-only history query must not create the room")
	}
}

func TestRoomForAdvocate(t *testing.T) {
	if got := RoomForAdvocate("adv1"); got != "room_adv1" {
		t.Fatalf("RoomForAdvocate(adv1) = %q", got)
	}

	id, ok := AdvocateForRoom("room_adv1")
	if !ok || id != "adv1" {
		t.Fatalf("AdvocateForRoom(room_adv1) = %q, %v", id, ok)
	}
	if _, ok := AdvocateForRoom("general"); ok {
		t.Fatal("non-advocate key must not parse")
	}
	if _, ok := AdvocateForRoom("room_"); ok {
		t.Fatal("empty advocate id must not parse")
	}
}
