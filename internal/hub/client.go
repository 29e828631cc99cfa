package hub

import "hostelhub/backend/internal/models"

// Client is the interface for one live connection to the hub. It
// abstracts the underlying transport so the manager can treat websocket
// clients and test doubles uniformly.
type Client interface {
	// GetUserID returns the account id behind the connection.
	GetUserID() string
	// GetRole returns the account role, used for role-room broadcasts.
	GetRole() string

	// GetRoom returns the event room the client has joined, or "" when
	// it only listens to its role room.
	GetRoom() string
	// SetRoom moves the client into an event room.
	SetRoom(string)

	// GetSendChannel returns the channel the manager writes outbound
	// messages to for this client.
	GetSendChannel() chan<- models.HubMessage

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the connection and its channels.
	Close()
}
