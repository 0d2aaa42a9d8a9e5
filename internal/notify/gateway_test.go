package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advochat/advochat-server/internal/core"
)

func TestNotifyDeliversToRoomSubscribers(t *testing.T) {
	hub := core.NewHub(core.NewRegistry(), nil)
	gateway := NewGateway(hub, nil)

	sub := core.NewSubscriber(4)
	_, err := hub.Join(core.RoomForAdvocate("adv1"), sub, "Advocate A")
	require.NoError(t, err)
	<-sub.Events() // own join notice

	when := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	ev, err := gateway.Notify(core.RoomForAdvocate("adv1"), MeetingSummary{
		MeetingID:   "m1",
		AdvocateID:  "adv1",
		ClientName:  "Client A",
		ScheduledAt: when,
		Purpose:     "contract review",
	})
	require.NoError(t, err)
	require.NotNil(t, ev)

	assert.Equal(t, core.EventNotification, ev.Kind)
	assert.Equal(t, "adv1", ev.AdvocateID)
	assert.Equal(t, "Client A", ev.Sender)
	assert.Equal(t, "Client A requested a meeting on 2026-09-15 14:30: contract review", ev.Text)

	// Delivered over the same path as chat events.
	select {
	case got := <-sub.Events():
		assert.Equal(t, ev.ID, got.ID)
		assert.Equal(t, core.EventNotification, got.Kind)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered to the room subscriber")
	}

	// And recorded in the room's history alongside the join notice.
	history, err := hub.History(core.RoomForAdvocate("adv1"))
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.EventNotification, history[1].Kind)
}

func TestNotifyEmptyRoomKey(t *testing.T) {
	gateway := NewGateway(core.NewHub(core.NewRegistry(), nil), nil)

	_, err := gateway.Notify("", MeetingSummary{AdvocateID: "adv1", ClientName: "x", ScheduledAt: time.Now()})
	require.Error(t, err)
}
