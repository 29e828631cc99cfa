package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Security alert types.
const (
	AlertCurfew            = "curfew"
	AlertUnauthorizedEntry = "unauthorized_entry"
	AlertInvestigation     = "investigation"
)

// Security alert statuses.
const (
	AlertPending       = "pending"
	AlertInvestigating = "investigating"
	AlertResolved      = "resolved"
)

// SecurityAlert is an incident record raised by the security desk or the
// warden (curfew violation, unauthorized entry, ongoing investigation).
type SecurityAlert struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Type        string     `gorm:"type:text;not null;index" json:"type"`
	StudentID   string     `gorm:"type:text;index" json:"student_id"`
	StudentName string     `gorm:"type:text" json:"student_name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      string     `gorm:"type:text;not null;index" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func (a *SecurityAlert) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
)

// AttendanceRecord is one student's attendance mark for one day.
type AttendanceRecord struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	StudentID   string    `gorm:"type:text;not null;index:idx_attendance_day" json:"student_id"`
	StudentName string    `gorm:"type:text" json:"student_name"`
	Date        string    `gorm:"type:text;not null;index:idx_attendance_day" json:"date"`
	Status      string    `gorm:"type:text;not null" json:"status"`
	MarkedBy    string    `gorm:"type:text" json:"marked_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *AttendanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
