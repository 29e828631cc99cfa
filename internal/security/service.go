// Package security manages security alerts and attendance records.
package security

import (
	"strings"
	"time"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"go.uber.org/zap"
)

// Store is the slice of the storage layer the security desk needs.
type Store interface {
	SaveAlert(alert *models.SecurityAlert) error
	GetAlertByID(id string) (*models.SecurityAlert, error)
	ListAlerts(filter storage.AlertFilter) ([]models.SecurityAlert, error)
	SaveAttendance(record *models.AttendanceRecord) error
	ListAttendanceByDate(date string) ([]models.AttendanceRecord, error)
	ListAttendanceForStudent(studentID string) ([]models.AttendanceRecord, error)
}

// Service handles the security desk's records. Alerts follow the same
// permissive transition policy as complaints: any move between the
// three alert statuses is accepted, and entering resolved stamps
// ResolvedAt.
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

func validAlertType(t string) bool {
	return t == models.AlertCurfew || t == models.AlertUnauthorizedEntry || t == models.AlertInvestigation
}

func validAlertStatus(s string) bool {
	return s == models.AlertPending || s == models.AlertInvestigating || s == models.AlertResolved
}

// RaiseAlert records a new incident in the pending state.
func (s *Service) RaiseAlert(a *models.SecurityAlert) (*models.SecurityAlert, error) {
	if !validAlertType(a.Type) {
		return nil, &complaint.ValidationError{Field: "type", Reason: "unknown alert type"}
	}
	if strings.TrimSpace(a.Description) == "" {
		return nil, &complaint.ValidationError{Field: "description", Reason: "must not be empty"}
	}

	a.Status = models.AlertPending
	a.CreatedAt = s.now()
	a.ResolvedAt = nil
	if err := s.Storage.SaveAlert(a); err != nil {
		return nil, err
	}

	s.Log.Info("security alert raised",
		zap.String("alert_id", a.ID),
		zap.String("type", a.Type),
		zap.String("student_id", a.StudentID))
	return a, nil
}

// ProgressAlert moves an alert to a new status.
func (s *Service) ProgressAlert(id, newStatus, actor string) (*models.SecurityAlert, error) {
	if !validAlertStatus(newStatus) {
		return nil, &complaint.InvalidTransitionError{Status: newStatus}
	}

	a, err := s.Storage.GetAlertByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, &complaint.NotFoundError{ID: id}
	}

	previous := a.Status
	a.Status = newStatus
	if newStatus == models.AlertResolved {
		resolvedAt := s.now()
		a.ResolvedAt = &resolvedAt
	}
	if err := s.Storage.SaveAlert(a); err != nil {
		return nil, err
	}

	s.Log.Info("security alert status changed",
		zap.String("alert_id", a.ID),
		zap.String("from", previous),
		zap.String("to", newStatus),
		zap.String("actor", actor))
	return a, nil
}

func (s *Service) ListAlerts(filter storage.AlertFilter) ([]models.SecurityAlert, error) {
	return s.Storage.ListAlerts(filter)
}

// MarkAttendance stores one student's mark for a day.
func (s *Service) MarkAttendance(r *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if r.StudentID == "" {
		return nil, &complaint.ValidationError{Field: "student_id", Reason: "must not be empty"}
	}
	if r.Date == "" {
		return nil, &complaint.ValidationError{Field: "date", Reason: "must not be empty"}
	}
	switch r.Status {
	case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLeave:
	default:
		return nil, &complaint.ValidationError{Field: "status", Reason: "must be present, absent or leave"}
	}

	r.CreatedAt = s.now()
	if err := s.Storage.SaveAttendance(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) AttendanceByDate(date string) ([]models.AttendanceRecord, error) {
	return s.Storage.ListAttendanceByDate(date)
}

func (s *Service) AttendanceForStudent(studentID string) ([]models.AttendanceRecord, error) {
	return s.Storage.ListAttendanceForStudent(studentID)
}
