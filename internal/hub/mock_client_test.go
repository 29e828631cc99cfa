package hub_test

import (
	"hostelhub/backend/internal/models"
)

type MockClient struct {
	userID      string
	role        string
	room        string
	RecvChannel chan models.HubMessage
	Closed      bool
}

func newMockClient(userID, role string) *MockClient {
	return &MockClient{
		userID:      userID,
		role:        role,
		RecvChannel: make(chan models.HubMessage, 10),
	}
}

func (c *MockClient) GetUserID() string { return c.userID }
func (c *MockClient) GetRole() string   { return c.role }
func (c *MockClient) GetRoom() string   { return c.room }
func (c *MockClient) SetRoom(id string) { c.room = id }

func (c *MockClient) GetSendChannel() chan<- models.HubMessage {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.Closed = true
}
