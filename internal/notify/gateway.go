// Package notify is the narrow interface through which external workflows
// inject events into a room's stream without being room participants.
package notify

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/advochat/advochat-server/internal/core"
)

// MeetingSummary is the structured payload the scheduling workflow hands to
// the gateway. The chat core never sees the meeting request itself, only
// the notification event built from this summary.
type MeetingSummary struct {
	MeetingID   string
	AdvocateID  string
	ClientName  string
	ScheduledAt time.Time
	Purpose     string
}

// Gateway is the sole sanctioned path from the scheduling workflow into the
// chat core. It never touches room or subscriber state directly.
type Gateway struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewGateway constructs a gateway over the hub. A nil logger disables logging.
func NewGateway(hub *core.Hub, logger *zerolog.Logger) *Gateway {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Gateway{hub: hub, log: logger}
}

// Notify formats the summary into a notification event and publishes it to
// roomKey through the hub's ordinary delivery path. Subscribers receive it
// exactly like a chat event, apart from its kind tag.
func (g *Gateway) Notify(roomKey string, summary MeetingSummary) (*core.Event, error) {
	ev, err := g.hub.PublishNotification(roomKey, summary.ClientName, formatSummary(summary), summary.AdvocateID)
	if err != nil {
		return nil, err
	}
	g.log.Info().
		Str("room", roomKey).
		Str("meeting_id", summary.MeetingID).
		Str("advocate_id", summary.AdvocateID).
		Msg("meeting notification published")
	return ev, nil
}

func formatSummary(s MeetingSummary) string {
	text := fmt.Sprintf("%s requested a meeting on %s", s.ClientName, s.ScheduledAt.Format("2006-01-02 15:04"))
	if s.Purpose != "" {
		text += ": " + s.Purpose
	}
	return text
}
