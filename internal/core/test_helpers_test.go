package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan Event, kind EventKind) Event {
	t.Helper()

	select {
	case ev := <-ch:
		if ev.Kind != kind {
			t.Fatalf("expected event kind %q, got %q (%+v)", kind, ev.Kind, ev)
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("expected event kind %q not received", kind)
		return Event{}
	}
}

func mustNoEvent(t *testing.T, ch <-chan Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("expected no event, got %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
