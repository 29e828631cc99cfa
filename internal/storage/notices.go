package storage

import (
	"errors"

	"hostelhub/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (s *Service) SaveNotice(notice *models.Notice) error {
	return s.DB.Save(notice).Error
}

func (s *Service) DeleteNotice(id string) error {
	return s.DB.Delete(&models.Notice{}, "id = ?", id).Error
}

// ListNotices returns every notice, newest first. Expiry filtering is a
// view concern handled by the notice service.
func (s *Service) ListNotices() ([]models.Notice, error) {
	var notices []models.Notice
	if err := s.DB.Order("created_at desc").Find(&notices).Error; err != nil {
		s.Log.Error("failed to list notices", zap.Error(err))
		return nil, err
	}
	return notices, nil
}

func (s *Service) SaveEvent(event *models.Event) error {
	return s.DB.Save(event).Error
}

func (s *Service) GetEventByID(id string) (*models.Event, error) {
	var event models.Event
	err := s.DB.First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Service) ListEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.Order("date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Service) SaveEventMessage(msg *models.EventMessage) error {
	if err := s.DB.Create(msg).Error; err != nil {
		s.Log.Error("failed to save event message",
			zap.String("event_id", msg.EventID), zap.Error(err))
		return err
	}
	return nil
}

// GetEventChatHistory loads the room history sorted by creation time.
func (s *Service) GetEventChatHistory(eventID string) ([]models.EventMessage, error) {
	var history []models.EventMessage
	err := s.DB.Where("event_id = ?", eventID).Order("created_at asc").Find(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return history, nil
		}
		s.Log.Error("failed to get event chat history",
			zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return history, nil
}
