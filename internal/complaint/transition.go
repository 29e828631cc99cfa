package complaint

import (
	"hostelhub/backend/internal/models"

	"go.uber.org/zap"
)

// Transition moves the complaint to newStatus on behalf of actor and
// fires the side effects the move implies.
//
// Any move between the three legal statuses is accepted, including
// backwards ones; only an out-of-enum target is rejected. Entering
// in-progress from a different status publishes exactly one work-order
// snapshot to the relay. Entering resolved stamps ResolvedAt, also when
// re-resolving. Entering pending (reopen) has no side effect and keeps
// the ResolvedAt watermark from the first resolution.
func (s *Service) Transition(id, newStatus, actor string) (*models.Complaint, error) {
	if !models.ValidStatus(newStatus) {
		return nil, &InvalidTransitionError{Status: newStatus}
	}

	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	previous := c.Status
	c.Status = newStatus

	if newStatus == models.StatusResolved {
		resolvedAt := s.now()
		c.ResolvedAt = &resolvedAt
	}

	if err := s.Storage.UpdateComplaint(c); err != nil {
		return nil, err
	}

	s.Log.Info("complaint status changed",
		zap.String("complaint_id", c.ID),
		zap.String("from", previous),
		zap.String("to", newStatus),
		zap.String("actor", actor))

	if newStatus == models.StatusInProgress && previous != models.StatusInProgress {
		s.emitWorkOrder(c)
	}
	return c, nil
}

// emitWorkOrder publishes a snapshot of the complaint to the relay. One
// snapshot per transition event: re-entering in-progress re-emits.
func (s *Service) emitWorkOrder(c *models.Complaint) {
	if s.Relay == nil {
		return
	}

	snapshot := models.WorkOrder{
		ComplaintID: c.ID,
		RoomNumber:  c.RoomNumber,
		Category:    c.Category,
		Description: c.Description,
		StudentName: c.StudentName,
		Timestamp:   s.now(),
	}
	order, err := s.Relay.Publish(snapshot)
	if err != nil {
		// The status change already committed; a lost work order is a
		// notification failure, not a registry failure.
		s.Log.Error("failed to publish work order",
			zap.String("complaint_id", c.ID), zap.Error(err))
		return
	}

	s.Log.Info("work order sent to housekeeping",
		zap.String("complaint_id", c.ID),
		zap.String("work_order_id", order.ID))

	if s.Notifier != nil {
		s.Notifier.NotifyWorkOrder(*order)
	}
}

// Assign sets the staff member responsible for the complaint. It is
// independent of status and does not validate against a roster.
func (s *Service) Assign(id, staffName string) (*models.Complaint, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	c.AssignedTo = staffName
	if err := s.Storage.UpdateComplaint(c); err != nil {
		return nil, err
	}

	s.Log.Info("complaint assigned",
		zap.String("complaint_id", c.ID),
		zap.String("assigned_to", staffName))
	return c, nil
}
