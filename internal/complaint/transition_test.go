package complaint_test

import (
	"testing"
	"time"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(storageMock *MockStorage, relay *MockRelay) *complaint.Service {
	return complaint.NewService(storageMock, relay, nil, nil)
}

func pendingComplaint(id string) *models.Complaint {
	return &models.Complaint{
		ID:          id,
		StudentID:   "S1",
		StudentName: "John Doe",
		RoomNumber:  "A-101",
		Category:    "Plumbing",
		Description: "Leaking tap",
		Status:      models.StatusPending,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
}

// TestTransition_ToInProgressEmitsWorkOrder verifies the relay receives
// exactly one snapshot per transition into in-progress.
func TestTransition_ToInProgressEmitsWorkOrder(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	c := pendingComplaint("c1")
	storageMock.On("GetComplaintByID", "c1").Return(c, nil)
	storageMock.On("UpdateComplaint", c).Return(nil)
	relay := new(MockRelay)
	svc := newTestService(storageMock, relay)

	// Act
	updated, err := svc.Transition("c1", models.StatusInProgress, "warden-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Len(t, relay.Published, 1)

	snapshot := relay.Published[0]
	assert.Equal(t, "c1", snapshot.ComplaintID)
	assert.Equal(t, "A-101", snapshot.RoomNumber)
	assert.Equal(t, "Plumbing", snapshot.Category)
	assert.Equal(t, "Leaking tap", snapshot.Description)
	assert.Equal(t, "John Doe", snapshot.StudentName)
	assert.False(t, snapshot.Timestamp.IsZero())
}

// TestTransition_ReenteringInProgressReemits verifies a second entry
// into in-progress produces a second queue entry: snapshots are per
// transition event, not per complaint.
func TestTransition_ReenteringInProgressReemits(t *testing.T) {
	storageMock := new(MockStorage)
	c := pendingComplaint("c1")
	storageMock.On("GetComplaintByID", "c1").Return(c, nil)
	storageMock.On("UpdateComplaint", c).Return(nil)
	relay := new(MockRelay)
	svc := newTestService(storageMock, relay)

	_, err := svc.Transition("c1", models.StatusInProgress, "warden-1")
	assert.NoError(t, err)
	_, err = svc.Transition("c1", models.StatusResolved, "warden-1")
	assert.NoError(t, err)
	_, err = svc.Transition("c1", models.StatusInProgress, "warden-1")
	assert.NoError(t, err)

	assert.Len(t, relay.Published, 2)
}

// TestTransition_InProgressToInProgressDoesNotEmit pins the "from a
// non-in-progress state" guard.
func TestTransition_InProgressToInProgressDoesNotEmit(t *testing.T) {
	storageMock := new(MockStorage)
	c := pendingComplaint("c1")
	c.Status = models.StatusInProgress
	storageMock.On("GetComplaintByID", "c1").Return(c, nil)
	storageMock.On("UpdateComplaint", c).Return(nil)
	relay := new(MockRelay)
	svc := newTestService(storageMock, relay)

	_, err := svc.Transition("c1", models.StatusInProgress, "warden-1")

	assert.NoError(t, err)
	assert.Empty(t, relay.Published)
}

// TestTransition_ResolvedSetsTimestamp verifies ResolvedAt lands at or
// after the creation time.
func TestTransition_ResolvedSetsTimestamp(t *testing.T) {
	storageMock := new(MockStorage)
	c := pendingComplaint("c1")
	storageMock.On("GetComplaintByID", "c1").Return(c, nil)
	storageMock.On("UpdateComplaint", c).Return(nil)
	svc := newTestService(storageMock, nil)

	updated, err := svc.Transition("c1", models.StatusResolved, "warden-1")

	assert.NoError(t, err)
	assert.NotNil(t, updated.ResolvedAt)
	assert.False(t, updated.ResolvedAt.Before(updated.CreatedAt))
}

// TestTransition_ReopenKeepsResolvedWatermark pins the reopen policy:
// moving back to pending keeps the first-resolution timestamp.
func TestTransition_ReopenKeepsResolvedWatermark(t *testing.T) {
	storageMock := new(MockStorage)
	c := pendingComplaint("c1")
	storageMock.On("GetComplaintByID", "c1").Return(c, nil)
	storageMock.On("UpdateComplaint", c).Return(nil)
	svc := newTestService(storageMock, nil)

	resolved, err := svc.Transition("c1", models.StatusResolved, "warden-1")
	assert.NoError(t, err)
	firstResolvedAt := *resolved.ResolvedAt

	reopened, err := svc.Transition("c1", models.StatusPending, "warden-1")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, reopened.Status)
	assert.NotNil(t, reopened.ResolvedAt)
	assert.Equal(t, firstResolvedAt, *reopened.ResolvedAt)
}

func TestTransition_UnknownStatusRejected(t *testing.T) {
	storageMock := new(MockStorage)
	svc := newTestService(storageMock, nil)

	_, err := svc.Transition("c1", "escalated", "warden-1")

	var transitionErr *complaint.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "escalated", transitionErr.Status)
	// The enum check fires before any storage access.
	storageMock.AssertNotCalled(t, "GetComplaintByID", mock.Anything)
}

func TestTransition_UnknownComplaint(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetComplaintByID", "ghost").Return(nil, nil)
	svc := newTestService(storageMock, nil)

	_, err := svc.Transition("ghost", models.StatusResolved, "warden-1")

	var notFoundErr *complaint.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

// TestAssign_IndependentOfStatus verifies assignment neither checks nor
// changes the complaint status, and that a later transition still emits
// the snapshot without the assignment in it.
func TestAssign_IndependentOfStatus(t *testing.T) {
	storageMock := new(MockStorage)
	c := pendingComplaint("c1")
	storageMock.On("GetComplaintByID", "c1").Return(c, nil)
	storageMock.On("UpdateComplaint", c).Return(nil)
	relay := new(MockRelay)
	svc := newTestService(storageMock, relay)

	assigned, err := svc.Assign("c1", "Lisa Davis (Plumbing)")
	assert.NoError(t, err)
	assert.Equal(t, "Lisa Davis (Plumbing)", assigned.AssignedTo)
	assert.Equal(t, models.StatusPending, assigned.Status)

	_, err = svc.Transition("c1", models.StatusInProgress, "warden-1")
	assert.NoError(t, err)
	assert.Len(t, relay.Published, 1)
	// The snapshot field list does not include the assignment.
	assert.Equal(t, "A-101", relay.Published[0].RoomNumber)
	assert.Equal(t, "John Doe", relay.Published[0].StudentName)
}
