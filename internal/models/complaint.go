package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint statuses. Transitions between any two of these values are
// accepted by the workflow engine; anything else is rejected.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

// ComplaintCategories is the fixed set of categories a student can file
// a complaint under.
var ComplaintCategories = []string{
	"Housekeeping",
	"Electricity",
	"Plumbing",
	"Mess",
	"Wi-Fi",
	"Security",
	"Other",
}

// Complaint is a student-submitted maintenance or service issue tracked
// through pending -> in-progress -> resolved.
type Complaint struct {
	// ID is the unique complaint identifier (UUID), immutable after creation.
	ID string `gorm:"primaryKey" json:"id"`

	// StudentID, StudentName and RoomNumber are captured from the submitting
	// student's identity at creation time and never change afterwards.
	StudentID   string `gorm:"type:text;not null;index" json:"student_id"`
	StudentName string `gorm:"type:text;not null" json:"student_name"`
	RoomNumber  string `gorm:"type:text;not null" json:"room_number"`

	// Category is one of ComplaintCategories.
	Category string `gorm:"type:text;not null;index" json:"category"`
	// Description is the free-text body of the complaint, required.
	Description string `gorm:"type:text;not null" json:"description"`

	// Status drives all downstream behavior: work-order emission on entering
	// in-progress and the rating gate on resolved.
	Status string `gorm:"type:text;not null;index" json:"status"`
	// AssignedTo is a free-form staff name, settable independently of status.
	AssignedTo string `gorm:"type:text" json:"assigned_to"`

	CreatedAt time.Time `json:"created_at"`
	// ResolvedAt is set when the complaint first reaches resolved. It is kept
	// as a watermark if the complaint is later reopened, so it is non-nil
	// exactly when the complaint has been resolved at least once.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	// Image is an opaque reference to attached evidence, if any.
	Image string `gorm:"type:text" json:"image,omitempty"`

	// Rating (1-5) and Feedback close the loop on a resolved complaint.
	// Both are settable exactly once, by the original student only.
	Rating   *int   `json:"rating,omitempty"`
	Feedback string `gorm:"type:text" json:"feedback,omitempty"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// ValidStatus reports whether s is one of the three legal complaint statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

// ValidCategory reports whether c is in the fixed category set.
func ValidCategory(c string) bool {
	for _, known := range ComplaintCategories {
		if c == known {
			return true
		}
	}
	return false
}
