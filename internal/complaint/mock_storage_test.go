package complaint_test

import (
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(userID string) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) ListUsersByRole(role string) ([]models.User, error) {
	args := m.Called(role)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) CreateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) UpdateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) ListComplaints(filter storage.ComplaintFilter) ([]models.Complaint, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) CountComplaintsByStatus() (map[string]int, error) {
	args := m.Called()
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockStorage) SaveNotice(notice *models.Notice) error {
	args := m.Called(notice)
	return args.Error(0)
}

func (m *MockStorage) DeleteNotice(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListNotices() ([]models.Notice, error) {
	args := m.Called()
	return args.Get(0).([]models.Notice), args.Error(1)
}

func (m *MockStorage) SaveEvent(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockStorage) GetEventByID(id string) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockStorage) ListEvents() ([]models.Event, error) {
	args := m.Called()
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockStorage) SaveEventMessage(msg *models.EventMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) GetEventChatHistory(eventID string) ([]models.EventMessage, error) {
	args := m.Called(eventID)
	return args.Get(0).([]models.EventMessage), args.Error(1)
}

func (m *MockStorage) SaveAlert(alert *models.SecurityAlert) error {
	args := m.Called(alert)
	return args.Error(0)
}

func (m *MockStorage) GetAlertByID(id string) (*models.SecurityAlert, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SecurityAlert), args.Error(1)
}

func (m *MockStorage) ListAlerts(filter storage.AlertFilter) ([]models.SecurityAlert, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.SecurityAlert), args.Error(1)
}

func (m *MockStorage) SaveAttendance(record *models.AttendanceRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockStorage) ListAttendanceByDate(date string) ([]models.AttendanceRecord, error) {
	args := m.Called(date)
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func (m *MockStorage) ListAttendanceForStudent(studentID string) ([]models.AttendanceRecord, error) {
	args := m.Called(studentID)
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func (m *MockStorage) PublishHubMessage(room string, msg models.HubMessage) error {
	args := m.Called(room, msg)
	return args.Error(0)
}

// MockRelay records published work orders in arrival order.
type MockRelay struct {
	Published []models.WorkOrder
}

func (m *MockRelay) Publish(order models.WorkOrder) (*models.WorkOrder, error) {
	if order.ID == "" {
		order.ID = "wo-test"
	}
	m.Published = append(m.Published, order)
	return &order, nil
}

// MockNotifier counts side-channel pushes.
type MockNotifier struct {
	CreatedCount   int
	WorkOrderCount int
}

func (m *MockNotifier) NotifyComplaintCreated(c *models.Complaint) { m.CreatedCount++ }
func (m *MockNotifier) NotifyWorkOrder(order models.WorkOrder)     { m.WorkOrderCount++ }
