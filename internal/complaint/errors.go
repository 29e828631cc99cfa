package complaint

import "fmt"

// ValidationError reports a missing or malformed field on input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown record id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record with id %s", e.ID)
}

// PreconditionError reports an operation attempted in the wrong state:
// rating before resolution, rating twice, or rating someone else's
// complaint.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// InvalidTransitionError reports a transition target outside the
// three-value status enum. Moves between legal statuses never produce it.
type InvalidTransitionError struct {
	Status string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid target status %q", e.Status)
}
