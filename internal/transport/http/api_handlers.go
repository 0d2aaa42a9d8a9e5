package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/advochat/advochat-server/internal/core"
	"github.com/advochat/advochat-server/internal/directory"
	"github.com/advochat/advochat-server/internal/scheduling"
)

// APIHandlers provides HTTP handlers for the REST endpoints.
type APIHandlers struct {
	hub       *core.Hub
	dir       *directory.Directory
	scheduler *scheduling.Service
	log       *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(hub *core.Hub, dir *directory.Directory, scheduler *scheduling.Service, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		hub:       hub,
		dir:       dir,
		scheduler: scheduler,
		log:       logger,
	}
}

// ScheduleRequest represents the schedule meeting request body (form or JSON).
type ScheduleRequest struct {
	AdvocateID string `form:"advocate_id" json:"advocate_id"`
	ClientName string `form:"client_name" json:"client_name"`
	Date       string `form:"date" json:"date"`
	Time       string `form:"time" json:"time"`
	Purpose    string `form:"purpose" json:"purpose"`
}

// ScheduleResponse represents the schedule endpoint response body.
type ScheduleResponse struct {
	OK      bool                       `json:"ok"`
	Error   string                     `json:"error,omitempty"`
	Meeting *scheduling.MeetingRequest `json:"meeting,omitempty"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health reports liveness.
// GET /health
func (h *APIHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListAdvocates returns the advocate directory.
// GET /api/advocates
func (h *APIHandlers) ListAdvocates(c *gin.Context) {
	c.JSON(http.StatusOK, h.dir.List())
}

// GetAdvocate returns one advocate.
// GET /api/advocates/:id
func (h *APIHandlers) GetAdvocate(c *gin.Context) {
	adv, err := h.dir.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "advocate not found"})
		return
	}
	c.JSON(http.StatusOK, adv)
}

// ListMeetings returns the meeting requests targeting one advocate.
// GET /api/advocates/:id/meetings
func (h *APIHandlers) ListMeetings(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.dir.Get(id); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "advocate not found"})
		return
	}
	c.JSON(http.StatusOK, h.scheduler.ListForAdvocate(id))
}

// RoomHistory returns a room's backlog for initial render.
// GET /api/rooms/:room/history
func (h *APIHandlers) RoomHistory(c *gin.Context) {
	history, err := h.hub.History(c.Param("room"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	events := make([]any, 0, len(history))
	for _, ev := range history {
		events = append(events, eventData(ev))
	}
	c.JSON(http.StatusOK, events)
}

// Schedule handles meeting requests.
// POST /api/schedule
func (h *APIHandlers) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid schedule request")
		c.JSON(http.StatusBadRequest, ScheduleResponse{OK: false, Error: "invalid request body"})
		return
	}

	meeting, err := h.scheduler.Schedule(scheduling.Input{
		AdvocateID: req.AdvocateID,
		ClientName: req.ClientName,
		Date:       req.Date,
		Time:       req.Time,
		Purpose:    req.Purpose,
	})
	if err != nil {
		var ce *core.CoreError
		if errors.As(err, &ce) {
			status := http.StatusBadRequest
			if ce.Code == core.ErrCodeNotFound {
				status = http.StatusNotFound
			}
			c.JSON(status, ScheduleResponse{OK: false, Error: ce.Message})
			return
		}
		h.log.Error().Err(err).Str("advocate_id", req.AdvocateID).Msg("failed to schedule meeting")
		c.JSON(http.StatusInternalServerError, ScheduleResponse{OK: false, Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{OK: true, Meeting: &meeting})
}
