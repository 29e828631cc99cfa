// Package notice manages the notice board and the hostel event listing.
package notice

import (
	"strings"
	"time"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/models"

	"go.uber.org/zap"
)

// Store is the slice of the storage layer the notice service needs.
type Store interface {
	SaveNotice(notice *models.Notice) error
	DeleteNotice(id string) error
	ListNotices() ([]models.Notice, error)
	SaveEvent(event *models.Event) error
	GetEventByID(id string) (*models.Event, error)
	ListEvents() ([]models.Event, error)
	GetEventChatHistory(eventID string) ([]models.EventMessage, error)
}

// Service handles notices and events.
type Service struct {
	Storage Store
	Log     *zap.Logger

	now func() time.Time
}

func NewService(s Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Storage: s, Log: log, now: time.Now}
}

// PublishNotice validates and stores a warden announcement.
func (s *Service) PublishNotice(n *models.Notice) (*models.Notice, error) {
	if strings.TrimSpace(n.Title) == "" {
		return nil, &complaint.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(n.Content) == "" {
		return nil, &complaint.ValidationError{Field: "content", Reason: "must not be empty"}
	}
	n.CreatedAt = s.now()

	if err := s.Storage.SaveNotice(n); err != nil {
		return nil, err
	}
	s.Log.Info("notice published",
		zap.String("notice_id", n.ID), zap.String("title", n.Title))
	return n, nil
}

func (s *Service) RemoveNotice(id string) error {
	return s.Storage.DeleteNotice(id)
}

// ActiveNotices returns the board as students see it: unexpired notices,
// newest first. Expired notices stay stored but are filtered out.
func (s *Service) ActiveNotices() ([]models.Notice, error) {
	all, err := s.Storage.ListNotices()
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := all[:0]
	for _, n := range all {
		if n.Active(now) {
			active = append(active, n)
		}
	}
	return active, nil
}

// AllNotices returns the full board, expired entries included, for the
// warden surface.
func (s *Service) AllNotices() ([]models.Notice, error) {
	return s.Storage.ListNotices()
}

// CreateEvent stores a hostel event. The creating account becomes the
// chat admin when chat is enabled.
func (s *Service) CreateEvent(e *models.Event) (*models.Event, error) {
	if strings.TrimSpace(e.Title) == "" {
		return nil, &complaint.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	e.CreatedAt = s.now()

	if err := s.Storage.SaveEvent(e); err != nil {
		return nil, err
	}
	s.Log.Info("event created",
		zap.String("event_id", e.ID), zap.String("title", e.Title))
	return e, nil
}

func (s *Service) ListEvents() ([]models.Event, error) {
	return s.Storage.ListEvents()
}

// EventChatHistory returns the persisted chat log for an event room.
func (s *Service) EventChatHistory(eventID string) ([]models.EventMessage, error) {
	event, err := s.Storage.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, &complaint.NotFoundError{ID: eventID}
	}
	return s.Storage.GetEventChatHistory(eventID)
}
