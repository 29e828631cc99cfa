package complaint_test

import (
	"testing"

	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestCreate_NewComplaintIsPending verifies a fresh complaint starts in
// the pending state with no resolution timestamp.
func TestCreate_NewComplaintIsPending(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	svc := complaint.NewService(storageMock, nil, nil, nil)

	// Act
	created, err := svc.Create(complaint.CreateInput{
		StudentID:   "S1",
		StudentName: "John Doe",
		RoomNumber:  "A-101",
		Category:    "Plumbing",
		Description: "Leaking tap",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Nil(t, created.ResolvedAt)
	assert.Empty(t, created.AssignedTo)
	assert.False(t, created.CreatedAt.IsZero())
	storageMock.AssertCalled(t, "CreateComplaint", mock.AnythingOfType("*models.Complaint"))
}

func TestCreate_Validation(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaint.NewService(storageMock, nil, nil, nil)

	tests := []struct {
		name  string
		input complaint.CreateInput
		field string
	}{
		{
			name:  "unknown category",
			input: complaint.CreateInput{StudentID: "S1", Category: "Laundry", Description: "x"},
			field: "category",
		},
		{
			name:  "empty category",
			input: complaint.CreateInput{StudentID: "S1", Description: "x"},
			field: "category",
		},
		{
			name:  "empty description",
			input: complaint.CreateInput{StudentID: "S1", Category: "Mess", Description: "   "},
			field: "description",
		},
		{
			name:  "missing student",
			input: complaint.CreateInput{Category: "Mess", Description: "cold food"},
			field: "student_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.input)

			var validationErr *complaint.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	// No invalid input may reach the store.
	storageMock.AssertNotCalled(t, "CreateComplaint", mock.Anything)
}

func TestCreate_NotifiesStaffChannel(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	notifier := new(MockNotifier)
	svc := complaint.NewService(storageMock, nil, notifier, nil)

	_, err := svc.Create(complaint.CreateInput{
		StudentID:   "S1",
		StudentName: "John Doe",
		Category:    "Wi-Fi",
		Description: "No signal on floor 2",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, notifier.CreatedCount)
}

func TestGet_UnknownIDReturnsNotFound(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetComplaintByID", "missing").Return(nil, nil)
	svc := complaint.NewService(storageMock, nil, nil, nil)

	_, err := svc.Get("missing")

	var notFoundErr *complaint.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "missing", notFoundErr.ID)
}

// TestStatusCounts_ZeroFilled verifies every legal status appears in the
// histogram even when the store has no rows for it.
func TestStatusCounts_ZeroFilled(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("CountComplaintsByStatus").Return(map[string]int{
		models.StatusPending: 3,
	}, nil)
	svc := complaint.NewService(storageMock, nil, nil, nil)

	counts, err := svc.StatusCounts()

	assert.NoError(t, err)
	assert.Equal(t, 3, counts[models.StatusPending])
	assert.Equal(t, 0, counts[models.StatusInProgress])
	assert.Equal(t, 0, counts[models.StatusResolved])
}

func TestList_PassesFilterThrough(t *testing.T) {
	storageMock := new(MockStorage)
	filter := storage.ComplaintFilter{StudentID: "S1", Status: models.StatusPending}
	storageMock.On("ListComplaints", filter).Return([]models.Complaint{}, nil)
	svc := complaint.NewService(storageMock, nil, nil, nil)

	_, err := svc.List(filter)

	assert.NoError(t, err)
	storageMock.AssertCalled(t, "ListComplaints", filter)
}

func TestUpdate_MergesPatchFields(t *testing.T) {
	storageMock := new(MockStorage)
	existing := &models.Complaint{
		ID:          "c1",
		StudentID:   "S1",
		Category:    "Plumbing",
		Description: "Leaking tap",
		Status:      models.StatusPending,
	}
	storageMock.On("GetComplaintByID", "c1").Return(existing, nil)
	storageMock.On("UpdateComplaint", existing).Return(nil)
	svc := complaint.NewService(storageMock, nil, nil, nil)

	newDescription := "Leaking tap in the shared bathroom"
	image := "img-123"
	updated, err := svc.Update("c1", complaint.UpdatePatch{
		Description: &newDescription,
		Image:       &image,
	})

	assert.NoError(t, err)
	assert.Equal(t, newDescription, updated.Description)
	assert.Equal(t, "img-123", updated.Image)
	// Untouched fields survive the merge.
	assert.Equal(t, "Plumbing", updated.Category)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestUpdate_RejectsBlankDescription(t *testing.T) {
	storageMock := new(MockStorage)
	existing := &models.Complaint{ID: "c1", Description: "original"}
	storageMock.On("GetComplaintByID", "c1").Return(existing, nil)
	svc := complaint.NewService(storageMock, nil, nil, nil)

	blank := "  "
	_, err := svc.Update("c1", complaint.UpdatePatch{Description: &blank})

	var validationErr *complaint.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	storageMock.AssertNotCalled(t, "UpdateComplaint", mock.Anything)
}
