package config

import "time"

const (
	// Rating
	RatingMin = 1
	RatingMax = 5

	// JWT
	TokenTTL    = 72 * time.Hour
	TokenIssuer = "hostelhub-service"

	// Hub broadcast rooms
	RoomHousekeeping = "role:housekeeping"
	RoomSecurity     = "role:security"
	RoomWarden       = "role:warden"
)

// StaffRoster is the fixed list the warden surface offers when assigning
// a complaint. Assignment is free-form and is not validated against it.
var StaffRoster = []string{
	"Mike Johnson (Maintenance)",
	"Sarah Wilson (Housekeeping)",
	"John Brown (Electrical)",
	"Lisa Davis (Plumbing)",
	"David Smith (Security)",
}
