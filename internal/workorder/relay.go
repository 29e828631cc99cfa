// Package workorder implements the relay between the complaint workflow
// and the housekeeping queue: a FIFO list of work-order snapshots plus a
// completed bucket local to the housekeeping view.
package workorder

import (
	"context"
	"encoding/json"
	"errors"

	"hostelhub/backend/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	queueKey     = "workorders:queue"
	completedKey = "workorders:completed"
)

// ErrUnknownWorkOrder is returned by MarkComplete for an id that was
// never published.
var ErrUnknownWorkOrder = errors.New("unknown work order id")

// RelayService owns the housekeeping queue in redis. Entries are only
// ever appended; completion moves an id into the completed set, and
// reads split the queue against that set.
type RelayService struct {
	Redis *redis.Client
	Ctx   context.Context
	Log   *zap.Logger
}

// NewRelayService Constructor
func NewRelayService(rdb *redis.Client, log *zap.Logger) *RelayService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RelayService{
		Redis: rdb,
		Ctx:   context.Background(),
		Log:   log,
	}
}

// Publish appends the snapshot to the queue and returns it with its
// assigned id. There is no deduplication by complaint: a complaint that
// re-enters in-progress produces a second queue entry.
func (r *RelayService) Publish(order models.WorkOrder) (*models.WorkOrder, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	if err := r.Redis.RPush(r.Ctx, queueKey, payload).Err(); err != nil {
		r.Log.Error("failed to enqueue work order",
			zap.String("complaint_id", order.ComplaintID), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// MarkComplete moves the work order into the completed bucket. This is
// local to the housekeeping view: the originating complaint is not
// updated and the warden is not notified, matching the workflow where
// resolution stays with the warden.
func (r *RelayService) MarkComplete(workOrderID string) error {
	orders, err := r.all()
	if err != nil {
		return err
	}

	known := false
	for _, order := range orders {
		if order.ID == workOrderID {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownWorkOrder
	}

	if err := r.Redis.SAdd(r.Ctx, completedKey, workOrderID).Err(); err != nil {
		return err
	}
	r.Log.Info("work order completed", zap.String("work_order_id", workOrderID))
	return nil
}

// Pending returns queue entries not yet marked complete, oldest first.
func (r *RelayService) Pending() ([]models.WorkOrder, error) {
	return r.filtered(false)
}

// Completed returns queue entries in the completed bucket, oldest first.
func (r *RelayService) Completed() ([]models.WorkOrder, error) {
	return r.filtered(true)
}

// Len returns the total number of queue entries, completed included.
func (r *RelayService) Len() (int64, error) {
	return r.Redis.LLen(r.Ctx, queueKey).Result()
}

func (r *RelayService) all() ([]models.WorkOrder, error) {
	raw, err := r.Redis.LRange(r.Ctx, queueKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	orders := make([]models.WorkOrder, 0, len(raw))
	for _, entry := range raw {
		var order models.WorkOrder
		if err := json.Unmarshal([]byte(entry), &order); err != nil {
			r.Log.Error("corrupt work order entry skipped", zap.Error(err))
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// filtered splits the queue against the completed set without removing
// anything from either.
func (r *RelayService) filtered(completed bool) ([]models.WorkOrder, error) {
	orders, err := r.all()
	if err != nil {
		return nil, err
	}

	doneIDs, err := r.Redis.SMembers(r.Ctx, completedKey).Result()
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(doneIDs))
	for _, id := range doneIDs {
		done[id] = true
	}

	out := orders[:0]
	for _, order := range orders {
		if done[order.ID] == completed {
			order.Completed = done[order.ID]
			out = append(out, order)
		}
	}
	return out, nil
}
