package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a hostel account can hold. The role decides which surface
// (student, warden, housekeeping, security) the account logs into.
const (
	RoleStudent      = "student"
	RoleWarden       = "warden"
	RoleHousekeeping = "housekeeping"
	RoleSecurity     = "security"
)

// User represents a hostel account: a resident student or a staff member.
type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"uniqueIndex" json:"email"`
	Role  string `gorm:"type:text;not null;index" json:"role"`

	// RoomNumber is set for students only.
	RoomNumber string `json:"room_number,omitempty"`
	// Department and Designation are set for staff accounts.
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
	// Photo is an opaque reference to a profile picture.
	Photo string `json:"photo,omitempty"`
}

// BeforeCreate is a GORM hook which assigns a fresh UUID when the
// record is created without an explicit ID.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// IsStaff reports whether the account belongs to hostel staff rather
// than a resident.
func (u *User) IsStaff() bool {
	return u.Role == RoleWarden || u.Role == RoleHousekeeping || u.Role == RoleSecurity
}
