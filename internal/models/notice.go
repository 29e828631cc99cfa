package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Notice is a warden-published announcement shown on the notice board.
type Notice struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Category  string         `gorm:"type:text;index" json:"category"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	CreatedBy string         `gorm:"type:text;not null" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	// ExpiryDate is optional; expired notices are filtered out of the
	// board, not deleted.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

func (n *Notice) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}

// Active reports whether the notice should still appear on the board at
// the given instant.
func (n *Notice) Active(now time.Time) bool {
	return n.ExpiryDate == nil || n.ExpiryDate.After(now)
}
