package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoin  = "join"
	InboundTypeLeave = "leave"
	InboundTypeMsg   = "msg"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	// Outbound event names.
	EventMessage          = "message"
	EventUserJoined       = "user_joined"
	EventUserLeft         = "user_left"
	EventMeetingRequested = "meeting_requested"
)

// JoinData asks to enter a room. User defaults to "Anonymous".
type JoinData struct {
	Room string `json:"room"`
	User string `json:"user"`
}

// LeaveData asks to leave a room.
type LeaveData struct {
	Room string `json:"room"`
	User string `json:"user"`
}

// MsgData is a chat message from the client. Sender defaults to "Unknown".
// Frames with an empty room or text are silently ignored.
type MsgData struct {
	Room   string `json:"room"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Outbound is the envelope for frames pushed to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventData is the delivered event shape shared by all kinds.
type EventData struct {
	ID         string `json:"id"`
	Sender     string `json:"sender"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"` // RFC 3339, UTC
	Kind       string `json:"kind"`
	AdvocateID string `json:"advocate_id,omitempty"` // notifications only
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
