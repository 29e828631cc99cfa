// Package hub runs the realtime side of the service: event chat rooms
// and live role broadcasts (work orders to housekeeping, SOS to
// security) over websocket connections fanned out through redis.
package hub

import (
	"encoding/json"
	"time"

	"hostelhub/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is the slice of the storage layer the hub needs.
type Store interface {
	GetEventByID(id string) (*models.Event, error)
	SaveEventMessage(msg *models.EventMessage) error
	PublishHubMessage(room string, msg models.HubMessage) error
	SubscribeHub() *redis.PubSub
}

// Manager owns the set of live connections and serializes all hub state
// changes through its Run loop.
type Manager struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	IncomingCh   chan models.HubMessage

	Storage Store
	Log     *zap.Logger

	pubSubCh chan models.HubMessage
}

// NewManager creates the hub manager around the given store.
func NewManager(s Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		IncomingCh:   make(chan models.HubMessage),
		Storage:      s,
		Log:          log,
		pubSubCh:     make(chan models.HubMessage),
	}
}

// startPubSubListener subscribes to the hub channels on redis and feeds
// decoded messages into the Run loop, so every instance sees messages
// published by any instance.
func (m *Manager) startPubSubListener() {
	go func() {
		pubsub := m.Storage.SubscribeHub()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var hubMsg models.HubMessage
			if err := json.Unmarshal([]byte(msg.Payload), &hubMsg); err != nil {
				m.Log.Error("failed to decode pubsub payload", zap.Error(err))
				continue
			}
			m.pubSubCh <- hubMsg
		}
	}()
}

// Run is the hub dispatcher. All registration and delivery happens on
// this goroutine.
func (m *Manager) Run() {
	m.startPubSubListener()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetUserID()] = client
			m.Log.Info("hub client registered",
				zap.String("user_id", client.GetUserID()),
				zap.String("role", client.GetRole()))

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetUserID()]; ok {
				delete(m.Clients, client.GetUserID())
				client.Close()
			}

		case msg := <-m.IncomingCh:
			m.handleIncoming(msg)

		case msg := <-m.pubSubCh:
			m.deliver(msg)
		}
	}
}

// handleIncoming processes a chat message read from a client: persist
// it, then publish through redis so all instances deliver it.
func (m *Manager) handleIncoming(msg models.HubMessage) {
	if msg.Kind != "chat" || msg.EventID == "" {
		return
	}

	event, err := m.Storage.GetEventByID(msg.EventID)
	if err != nil || event == nil {
		m.Log.Warn("chat message for unknown event dropped",
			zap.String("event_id", msg.EventID))
		return
	}
	if !event.ChatEnabled {
		return
	}

	msg.SentAt = time.Now()
	record := &models.EventMessage{
		EventID:  msg.EventID,
		UserID:   msg.SenderID,
		UserName: msg.Sender,
		Message:  msg.Body,
	}
	if err := m.Storage.SaveEventMessage(record); err != nil {
		m.Log.Error("failed to persist chat message", zap.Error(err))
		return
	}

	if err := m.Storage.PublishHubMessage("event:"+msg.EventID, msg); err != nil {
		m.Log.Error("failed to publish chat message", zap.Error(err))
	}
}

// deliver fans a message out to the connected clients it addresses.
func (m *Manager) deliver(msg models.HubMessage) {
	targetRoom := msg.Room
	if msg.EventID != "" {
		targetRoom = "event:" + msg.EventID
	}

	for _, client := range m.Clients {
		if !m.targets(client, targetRoom) {
			continue
		}
		select {
		case client.GetSendChannel() <- msg:
		default:
			// Slow client: drop the connection rather than block the hub.
			delete(m.Clients, client.GetUserID())
			client.Close()
		}
	}
}

// targets reports whether the client should receive messages for room.
func (m *Manager) targets(c Client, room string) bool {
	if room == "role:"+c.GetRole() {
		return true
	}
	return c.GetRoom() != "" && room == "event:"+c.GetRoom()
}

// Broadcast publishes a message to a broadcast room through redis. Used
// by the HTTP layer for SOS alerts and live work-order pushes.
func (m *Manager) Broadcast(room string, msg models.HubMessage) error {
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now()
	}
	msg.Room = room
	return m.Storage.PublishHubMessage(room, msg)
}
