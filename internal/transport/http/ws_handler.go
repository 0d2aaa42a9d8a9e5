package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/advochat/advochat-server/internal/config"
	"github.com/advochat/advochat-server/internal/core"
	"github.com/advochat/advochat-server/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to the hub.
type WSHandler struct {
	hub *core.Hub
	cfg *config.Config
	log *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{hub: hub, cfg: cfg, log: logger}
}

// wsSession tracks the single room a connection occupies. Only the read
// loop and the post-loop cleanup touch it, never concurrently.
type wsSession struct {
	sub  *core.Subscriber
	room string
	user string
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	session := &wsSession{sub: core.NewSubscriber(h.cfg.SubscriberBuffer)}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, session)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, session.sub)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	// A dropped connection counts as a leave; the transport invokes it on
	// the hub's behalf.
	if session.room != "" {
		if _, leaveErr := h.hub.Leave(session.room, session.sub, session.user); leaveErr != nil {
			h.log.Warn().Err(leaveErr).Str("room", session.room).Msg("leave on disconnect failed")
		}
	}

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, session *wsSession) error {
	limiter := newRateLimiter(h.cfg.MessageRateLimit)

	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		switch inbound.Type {
		case proto.InboundTypeJoin:
			var data proto.JoinData
			if err := json.Unmarshal(inbound.Data, &data); err != nil {
				if writeErr := wsjson.Write(ctx, conn, errorOutbound(core.ErrCodeInvalidArgument, "malformed join frame")); writeErr != nil {
					return writeErr
				}
				continue
			}
			if data.User == "" {
				data.User = "Anonymous"
			}
			// One room per connection: joining elsewhere leaves the old room.
			if session.room != "" && session.room != data.Room {
				if _, err := h.hub.Leave(session.room, session.sub, session.user); err != nil {
					h.log.Warn().Err(err).Str("room", session.room).Msg("implicit leave failed")
				}
			}
			if _, err := h.hub.Join(data.Room, session.sub, data.User); err != nil {
				if writeErr := h.writeDomainError(ctx, conn, err); writeErr != nil {
					return writeErr
				}
				continue
			}
			session.room = data.Room
			session.user = data.User

		case proto.InboundTypeLeave:
			var data proto.LeaveData
			if err := json.Unmarshal(inbound.Data, &data); err != nil || data.Room == "" {
				continue
			}
			if data.User == "" {
				data.User = "Anonymous"
			}
			if _, err := h.hub.Leave(data.Room, session.sub, data.User); err != nil {
				if writeErr := h.writeDomainError(ctx, conn, err); writeErr != nil {
					return writeErr
				}
				continue
			}
			if session.room == data.Room {
				session.room = ""
				session.user = ""
			}

		case proto.InboundTypeMsg:
			var data proto.MsgData
			if err := json.Unmarshal(inbound.Data, &data); err != nil {
				continue
			}
			// Empty room or text frames are dropped without a reply.
			if data.Room == "" || data.Text == "" {
				continue
			}
			if data.Sender == "" {
				data.Sender = "Unknown"
			}
			if !limiter.allow() {
				if writeErr := wsjson.Write(ctx, conn, errorOutbound("rate_limited", "too many messages")); writeErr != nil {
					return writeErr
				}
				continue
			}
			if _, err := h.hub.Publish(data.Room, core.EventChat, data.Sender, data.Text); err != nil {
				h.log.Debug().Err(err).Str("room", data.Room).Msg("publish rejected")
			}

		default:
			if writeErr := wsjson.Write(ctx, conn, errorOutbound("bad_request", "unknown message type")); writeErr != nil {
				return writeErr
			}
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, sub *core.Subscriber) error {
	for {
		select {
		case event := <-sub.Events():
			if err := wsjson.Write(ctx, conn, outboundFromEvent(event)); err != nil {
				h.log.Error().Err(err).Str("subscriber", sub.ID).Msg("write ws event")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *WSHandler) writeDomainError(ctx context.Context, conn *websocket.Conn, err error) error {
	var ce *core.CoreError
	if errors.As(err, &ce) {
		return wsjson.Write(ctx, conn, errorOutbound(ce.Code, ce.Message))
	}
	return wsjson.Write(ctx, conn, errorOutbound("internal", "internal error"))
}
