package storage

import (
	"context"
	"encoding/json"
	"errors"

	"hostelhub/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ComplaintFilter narrows a complaint listing. Empty fields match everything.
type ComplaintFilter struct {
	StudentID string
	Status    string
	Category  string
}

// AlertFilter narrows a security alert listing.
type AlertFilter struct {
	Type   string
	Status string
}

type Storage interface {
	SaveUser(user *models.User) error
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsersByRole(role string) ([]models.User, error)

	CreateComplaint(complaint *models.Complaint) error
	UpdateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	ListComplaints(filter ComplaintFilter) ([]models.Complaint, error)
	CountComplaintsByStatus() (map[string]int, error)

	SaveNotice(notice *models.Notice) error
	DeleteNotice(id string) error
	ListNotices() ([]models.Notice, error)

	SaveEvent(event *models.Event) error
	GetEventByID(id string) (*models.Event, error)
	ListEvents() ([]models.Event, error)
	SaveEventMessage(msg *models.EventMessage) error
	GetEventChatHistory(eventID string) ([]models.EventMessage, error)

	SaveAlert(alert *models.SecurityAlert) error
	GetAlertByID(id string) (*models.SecurityAlert, error)
	ListAlerts(filter AlertFilter) ([]models.SecurityAlert, error)
	SaveAttendance(record *models.AttendanceRecord) error
	ListAttendanceByDate(date string) ([]models.AttendanceRecord, error)
	ListAttendanceForStudent(studentID string) ([]models.AttendanceRecord, error)

	PublishHubMessage(room string, msg models.HubMessage) error
}

// Service is the gorm/redis-backed Storage implementation. PostgreSQL
// holds the entities; redis carries pub/sub fan-out and the work-order
// queue (owned by the workorder package).
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
	Log   *zap.Logger
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
		Log:   log,
	}
}

func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *Service) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) ListUsersByRole(role string) ([]models.User, error) {
	var users []models.User
	if err := s.DB.Where("role = ?", role).Order("name asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if err := s.DB.Create(complaint).Error; err != nil {
		s.Log.Error("failed to create complaint",
			zap.String("student_id", complaint.StudentID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) UpdateComplaint(complaint *models.Complaint) error {
	return s.DB.Save(complaint).Error
}

// GetComplaintByID returns nil without an error when the id is unknown;
// callers decide whether that is a NotFound condition.
func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListComplaints returns matching complaints in insertion order, which
// the "recent complaints" views rely on.
func (s *Service) ListComplaints(filter ComplaintFilter) ([]models.Complaint, error) {
	q := s.DB.Model(&models.Complaint{})
	if filter.StudentID != "" {
		q = q.Where("student_id = ?", filter.StudentID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var complaints []models.Complaint
	if err := q.Order("created_at asc").Find(&complaints).Error; err != nil {
		s.Log.Error("failed to list complaints", zap.Error(err))
		return nil, err
	}
	return complaints, nil
}

// CountComplaintsByStatus produces the status histogram for the warden
// dashboard. Statuses with no complaints are absent from the map.
func (s *Service) CountComplaintsByStatus() (map[string]int, error) {
	type row struct {
		Status string
		Total  int
	}
	var rows []row
	err := s.DB.Model(&models.Complaint{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

// PublishHubMessage publishes a hub message to a redis Pub/Sub room so
// every running instance can fan it out to its websocket clients.
func (s *Service) PublishHubMessage(room string, msg models.HubMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, "hub:"+room, payload).Err()
}

// SubscribeHub subscribes to every hub room on this redis instance.
func (s *Service) SubscribeHub() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, "hub:*")
}
