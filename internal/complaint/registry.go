// Package complaint implements the complaint lifecycle: the registry of
// complaint records, the status transition engine with its work-order
// side effects, and the rating gate that closes the loop on resolved
// complaints.
package complaint

import (
	"strings"
	"time"

	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"go.uber.org/zap"
)

// Relay receives a work-order snapshot every time a complaint enters
// in-progress. Implemented by the workorder package.
type Relay interface {
	Publish(order models.WorkOrder) (*models.WorkOrder, error)
}

// StaffNotifier pushes best-effort notifications to the staff side
// channel. Failures are logged by the caller and never surfaced.
type StaffNotifier interface {
	NotifyComplaintCreated(c *models.Complaint)
	NotifyWorkOrder(order models.WorkOrder)
}

// Service handles the business logic for complaints.
type Service struct {
	Storage  storage.Storage
	Relay    Relay
	Notifier StaffNotifier
	Log      *zap.Logger

	now func() time.Time
}

// NewService creates a new complaint service. Relay and Notifier may be
// nil, which disables the corresponding side effect.
func NewService(s storage.Storage, relay Relay, notifier StaffNotifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Storage:  s,
		Relay:    relay,
		Notifier: notifier,
		Log:      log,
		now:      time.Now,
	}
}

// CreateInput carries the fields a student submits when filing a complaint.
// Identity fields come from the authenticated session, not the request body.
type CreateInput struct {
	StudentID   string
	StudentName string
	RoomNumber  string
	Category    string
	Description string
	Image       string
}

// Create validates the input and registers a new complaint in the
// pending state. The id and creation timestamp are assigned here.
func (s *Service) Create(input CreateInput) (*models.Complaint, error) {
	if input.StudentID == "" {
		return nil, &ValidationError{Field: "student_id", Reason: "must not be empty"}
	}
	if !models.ValidCategory(input.Category) {
		return nil, &ValidationError{Field: "category", Reason: "must be one of the known categories"}
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	c := &models.Complaint{
		StudentID:   input.StudentID,
		StudentName: input.StudentName,
		RoomNumber:  input.RoomNumber,
		Category:    input.Category,
		Description: input.Description,
		Status:      models.StatusPending,
		AssignedTo:  "",
		Image:       input.Image,
		CreatedAt:   s.now(),
	}
	if err := s.Storage.CreateComplaint(c); err != nil {
		return nil, err
	}

	s.Log.Info("complaint created",
		zap.String("complaint_id", c.ID),
		zap.String("student_id", c.StudentID),
		zap.String("category", c.Category))

	if s.Notifier != nil {
		s.Notifier.NotifyComplaintCreated(c)
	}
	return c, nil
}

// Get returns the complaint with the given id.
func (s *Service) Get(id string) (*models.Complaint, error) {
	c, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &NotFoundError{ID: id}
	}
	return c, nil
}

// List returns complaints matching the filter in insertion order.
func (s *Service) List(filter storage.ComplaintFilter) ([]models.Complaint, error) {
	return s.Storage.ListComplaints(filter)
}

// StatusCounts returns the status histogram for dashboards. Every legal
// status appears in the result, zero-valued when empty.
func (s *Service) StatusCounts() (map[string]int, error) {
	counts, err := s.Storage.CountComplaintsByStatus()
	if err != nil {
		return nil, err
	}
	for _, status := range []string{models.StatusPending, models.StatusInProgress, models.StatusResolved} {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}
	return counts, nil
}

// UpdatePatch carries the mutable non-status fields of a complaint.
// Nil fields are left untouched.
type UpdatePatch struct {
	Description *string
	Image       *string
}

// Update merges the patch into the stored record. Status changes go
// through Transition, never through here.
func (s *Service) Update(id string, patch UpdatePatch) (*models.Complaint, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
		}
		c.Description = *patch.Description
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}

	if err := s.Storage.UpdateComplaint(c); err != nil {
		return nil, err
	}
	return c, nil
}
