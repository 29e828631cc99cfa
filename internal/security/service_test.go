package security_test

import (
	"testing"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/security"
	"hostelhub/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveAlert(a *models.SecurityAlert) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStore) GetAlertByID(id string) (*models.SecurityAlert, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SecurityAlert), args.Error(1)
}

func (m *MockStore) ListAlerts(filter storage.AlertFilter) ([]models.SecurityAlert, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SecurityAlert), args.Error(1)
}

func (m *MockStore) SaveAttendance(r *models.AttendanceRecord) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockStore) ListAttendanceByDate(date string) ([]models.AttendanceRecord, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func (m *MockStore) ListAttendanceForStudent(studentID string) ([]models.AttendanceRecord, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func TestRaiseAlert_StartsPending(t *testing.T) {
	store := new(MockStore)
	store.On("SaveAlert", mock.AnythingOfType("*models.SecurityAlert")).Return(nil)
	service := security.NewService(store, nil)

	alert, err := service.RaiseAlert(&models.SecurityAlert{
		Type:        models.AlertCurfew,
		StudentID:   "student-1",
		Description: "Entered after 11pm through the back gate",
		// A submitted status must be ignored; alerts always start pending.
		Status: models.AlertResolved,
	})

	require.NoError(t, err)
	assert.Equal(t, models.AlertPending, alert.Status)
	assert.Nil(t, alert.ResolvedAt)
	assert.False(t, alert.CreatedAt.IsZero())
	store.AssertExpectations(t)
}

func TestRaiseAlert_Validation(t *testing.T) {
	tests := []struct {
		name  string
		alert models.SecurityAlert
		field string
	}{
		{"unknown type", models.SecurityAlert{Type: "noise", Description: "loud music"}, "type"},
		{"blank description", models.SecurityAlert{Type: models.AlertCurfew, Description: "  "}, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			service := security.NewService(store, nil)

			_, err := service.RaiseAlert(&tt.alert)

			var vErr *complaint.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			store.AssertNotCalled(t, "SaveAlert", mock.Anything)
		})
	}
}

func TestProgressAlert_ResolvedStampsTimestamp(t *testing.T) {
	alert := &models.SecurityAlert{ID: "alert-1", Type: models.AlertCurfew, Status: models.AlertInvestigating}
	store := new(MockStore)
	store.On("GetAlertByID", "alert-1").Return(alert, nil)
	store.On("SaveAlert", alert).Return(nil)
	service := security.NewService(store, nil)

	updated, err := service.ProgressAlert("alert-1", models.AlertResolved, "guard-1")

	require.NoError(t, err)
	assert.Equal(t, models.AlertResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
}

// TestProgressAlert_AnyDirectionAllowed covers the permissive policy:
// reopening a resolved alert back to investigating is legal.
func TestProgressAlert_AnyDirectionAllowed(t *testing.T) {
	alert := &models.SecurityAlert{ID: "alert-1", Type: models.AlertInvestigation, Status: models.AlertResolved}
	store := new(MockStore)
	store.On("GetAlertByID", "alert-1").Return(alert, nil)
	store.On("SaveAlert", alert).Return(nil)
	service := security.NewService(store, nil)

	updated, err := service.ProgressAlert("alert-1", models.AlertInvestigating, "guard-1")

	require.NoError(t, err)
	assert.Equal(t, models.AlertInvestigating, updated.Status)
}

func TestProgressAlert_UnknownStatusRejected(t *testing.T) {
	store := new(MockStore)
	service := security.NewService(store, nil)

	_, err := service.ProgressAlert("alert-1", "dismissed", "guard-1")

	var tErr *complaint.InvalidTransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "dismissed", tErr.Status)
	store.AssertNotCalled(t, "GetAlertByID", mock.Anything)
}

func TestProgressAlert_UnknownAlert(t *testing.T) {
	store := new(MockStore)
	store.On("GetAlertByID", "missing").Return(nil, nil)
	service := security.NewService(store, nil)

	_, err := service.ProgressAlert("missing", models.AlertResolved, "guard-1")

	var nfErr *complaint.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "missing", nfErr.ID)
}

func TestMarkAttendance_Validation(t *testing.T) {
	tests := []struct {
		name   string
		record models.AttendanceRecord
		field  string
	}{
		{"missing student", models.AttendanceRecord{Date: "2024-03-01", Status: models.AttendancePresent}, "student_id"},
		{"missing date", models.AttendanceRecord{StudentID: "s1", Status: models.AttendancePresent}, "date"},
		{"bad status", models.AttendanceRecord{StudentID: "s1", Date: "2024-03-01", Status: "late"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			service := security.NewService(store, nil)

			_, err := service.MarkAttendance(&tt.record)

			var vErr *complaint.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			store.AssertNotCalled(t, "SaveAttendance", mock.Anything)
		})
	}
}

func TestMarkAttendance_SavesRecord(t *testing.T) {
	store := new(MockStore)
	store.On("SaveAttendance", mock.AnythingOfType("*models.AttendanceRecord")).Return(nil)
	service := security.NewService(store, nil)

	record, err := service.MarkAttendance(&models.AttendanceRecord{
		StudentID: "student-1",
		Date:      "2024-03-01",
		Status:    models.AttendanceLeave,
	})

	require.NoError(t, err)
	assert.False(t, record.CreatedAt.IsZero())
	store.AssertExpectations(t)
}
