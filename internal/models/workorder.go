package models

import "time"

// WorkOrder is the task notification sent to the housekeeping team when
// a complaint enters in-progress. It carries a snapshot of the complaint
// at transition time; later edits to the complaint do not touch it.
// AssignedTo is deliberately not part of the snapshot; assignment is a
// warden-side concern the housekeeping queue does not see.
type WorkOrder struct {
	ID          string    `json:"id"`
	ComplaintID string    `json:"complaint_id"`
	RoomNumber  string    `json:"room_number"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	StudentName string    `json:"student_name"`
	Timestamp   time.Time `json:"timestamp"`

	// Completed is a view-side flag maintained by the relay's completed
	// bucket. Marking a work order complete does not feed back into the
	// originating complaint.
	Completed bool `json:"completed"`
}
