package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a hostel event (tournament, fest, meeting) that may carry its
// own chat room for attendees.
type Event struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Date        string `gorm:"type:text" json:"date"`
	Venue       string `gorm:"type:text" json:"venue"`
	Organizer   string `gorm:"type:text" json:"organizer"`
	// ChatEnabled gates whether the event has a live chat room.
	ChatEnabled bool `json:"chat_enabled"`
	// AdminID is the account that moderates the event chat.
	AdminID   string    `gorm:"type:text" json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// EventMessage is a persisted chat message in an event room.
// The embedded gorm.Model provides ID, CreatedAt, UpdatedAt, and DeletedAt
// fields, which serve as the message ID and timestamps.
type EventMessage struct {
	gorm.Model

	// EventID is the event room the message was posted in.
	EventID string `gorm:"type:text;not null;index:idx_event_msg"`
	// UserID and UserName identify the sender.
	UserID   string `gorm:"type:text;not null;index:idx_event_msg"`
	UserName string `gorm:"type:text;not null"`
	// Message is the text body.
	Message string `gorm:"type:text;not null"`
}

// HubMessage is the wire payload exchanged over the websocket hub. It
// covers event chat, live work-order pushes, and SOS broadcasts; Kind
// tells the consumer how to interpret the rest.
type HubMessage struct {
	// Kind is one of "chat", "work_order", "sos", "system".
	Kind string `json:"kind"`
	// EventID is set for chat messages; Room addresses a broadcast group
	// such as "role:housekeeping" or "role:security" otherwise.
	EventID  string    `json:"event_id,omitempty"`
	Room     string    `json:"room,omitempty"`
	SenderID string    `json:"sender_id"`
	Sender   string    `json:"sender,omitempty"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
}
