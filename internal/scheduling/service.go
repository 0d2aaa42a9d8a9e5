// Package scheduling owns meeting requests: validation, an in-process
// per-advocate store, and the hand-off to the notification gateway.
package scheduling

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/advochat/advochat-server/internal/core"
	"github.com/advochat/advochat-server/internal/directory"
	"github.com/advochat/advochat-server/internal/notify"
)

// Status of a meeting request. Only requested exists in this design.
type Status string

// StatusRequested is the initial (and only) meeting request status.
const StatusRequested Status = "requested"

// MeetingRequest records a client's ask for time with an advocate.
type MeetingRequest struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client"`
	AdvocateID  string    `json:"advocate_id"`
	ScheduledAt time.Time `json:"datetime"`
	Purpose     string    `json:"purpose"`
	Status      Status    `json:"status"`
}

// Input carries the raw fields of a schedule request.
type Input struct {
	AdvocateID string
	ClientName string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Purpose    string
}

const dateTimeLayout = "2006-01-02 15:04"

// Service validates meeting requests, stores them per advocate, and tells
// the advocate's room about them through the notification gateway.
type Service struct {
	dir     *directory.Directory
	gateway *notify.Gateway
	log     *zerolog.Logger

	mu       sync.Mutex
	meetings map[string][]MeetingRequest
}

// NewService constructs the scheduling service. A nil logger disables logging.
func NewService(dir *directory.Directory, gateway *notify.Gateway, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{
		dir:      dir,
		gateway:  gateway,
		log:      logger,
		meetings: make(map[string][]MeetingRequest),
	}
}

// Schedule validates in, stores the resulting meeting request, and notifies
// the advocate's room. Malformed input is an invalid_argument; an unknown
// advocate is a not_found.
func (s *Service) Schedule(in Input) (MeetingRequest, error) {
	if in.AdvocateID == "" || in.ClientName == "" || in.Date == "" || in.Time == "" {
		return MeetingRequest{}, core.InvalidArgument("missing fields")
	}

	when, err := time.Parse(dateTimeLayout, in.Date+" "+in.Time)
	if err != nil {
		return MeetingRequest{}, core.InvalidArgument("invalid datetime format")
	}

	if _, err := s.dir.Get(in.AdvocateID); err != nil {
		return MeetingRequest{}, err
	}

	meeting := MeetingRequest{
		ID:          uuid.NewString(),
		ClientName:  in.ClientName,
		AdvocateID:  in.AdvocateID,
		ScheduledAt: when,
		Purpose:     in.Purpose,
		Status:      StatusRequested,
	}

	s.mu.Lock()
	s.meetings[in.AdvocateID] = append(s.meetings[in.AdvocateID], meeting)
	s.mu.Unlock()

	// The meeting is stored either way; a notification hiccup is not a
	// scheduling failure.
	if _, err := s.gateway.Notify(core.RoomForAdvocate(in.AdvocateID), notify.MeetingSummary{
		MeetingID:   meeting.ID,
		AdvocateID:  meeting.AdvocateID,
		ClientName:  meeting.ClientName,
		ScheduledAt: meeting.ScheduledAt,
		Purpose:     meeting.Purpose,
	}); err != nil {
		s.log.Warn().Err(err).Str("meeting_id", meeting.ID).Msg("failed to notify advocate room")
	}

	s.log.Info().
		Str("meeting_id", meeting.ID).
		Str("advocate_id", meeting.AdvocateID).
		Str("client", meeting.ClientName).
		Msg("meeting requested")
	return meeting, nil
}

// ListForAdvocate returns a snapshot of the meeting requests targeting one
// advocate, in request order.
func (s *Service) ListForAdvocate(advocateID string) []MeetingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.meetings[advocateID])
}
