package hub_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"hostelhub/backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// fakeStore backs the hub with a real miniredis pub/sub so the fan-out
// path is exercised end to end, while entity persistence stays in
// memory.
type fakeStore struct {
	rdb *redis.Client
	ctx context.Context

	mu     sync.Mutex
	events map[string]*models.Event
	saved  []models.EventMessage
}

func newFakeStore(t *testing.T) *fakeStore {
	mr := miniredis.RunT(t)
	return &fakeStore{
		rdb:    redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		ctx:    context.Background(),
		events: make(map[string]*models.Event),
	}
}

func (s *fakeStore) addEvent(e *models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e
}

func (s *fakeStore) savedMessages() []models.EventMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.EventMessage(nil), s.saved...)
}

func (s *fakeStore) GetEventByID(id string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[id], nil
}

func (s *fakeStore) SaveEventMessage(msg *models.EventMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, *msg)
	return nil
}

func (s *fakeStore) PublishHubMessage(room string, msg models.HubMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.rdb.Publish(s.ctx, "hub:"+room, payload).Err()
}

func (s *fakeStore) SubscribeHub() *redis.PubSub {
	return s.rdb.PSubscribe(s.ctx, "hub:*")
}
