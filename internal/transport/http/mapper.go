package http

import (
	"time"

	"github.com/advochat/advochat-server/internal/core"
	"github.com/advochat/advochat-server/internal/proto"
)

// outboundFromEvent converts a core event to its wire shape.
func outboundFromEvent(ev core.Event) proto.Outbound {
	return proto.Outbound{
		Type:  proto.OutboundTypeEvent,
		Event: eventName(ev),
		Data:  eventData(ev),
	}
}

func eventData(ev core.Event) proto.EventData {
	return proto.EventData{
		ID:         ev.ID,
		Sender:     ev.Sender,
		Text:       ev.Text,
		Timestamp:  ev.CreatedAt.UTC().Format(time.RFC3339Nano),
		Kind:       string(ev.Kind),
		AdvocateID: ev.AdvocateID,
	}
}

func eventName(ev core.Event) string {
	switch ev.Kind {
	case core.EventSystem:
		if ev.Notice == core.NoticeLeft {
			return proto.EventUserLeft
		}
		return proto.EventUserJoined
	case core.EventNotification:
		return proto.EventMeetingRequested
	default:
		return proto.EventMessage
	}
}

func errorOutbound(code, msg string) proto.Outbound {
	return proto.Outbound{
		Type:  proto.OutboundTypeError,
		Error: &proto.Error{Code: code, Msg: msg},
	}
}
