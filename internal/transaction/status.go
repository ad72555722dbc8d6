package transaction

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a transaction. PENDING is the only
// non-terminal state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

var statuses = map[Status]struct{}{
	StatusPending:   {},
	StatusCompleted: {},
	StatusFailed:    {},
	StatusCancelled: {},
}

// ParseStatus normalizes (trim + uppercase) and matches against the known
// variants.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := statuses[st]; !ok {
		return "", fmt.Errorf("%w: unknown transaction status %q, valid statuses are PENDING, COMPLETED, FAILED, CANCELLED", ErrInvalidArgument, s)
	}

	return st, nil
}

// CanTransitionTo reports whether the state machine permits moving to
// target. Only PENDING may move, and only to a terminal state; no state may
// re-enter itself.
func (s Status) CanTransitionTo(target Status) bool {
	if s != StatusPending {
		return false
	}

	switch target {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the status permits no further transition.
func (s Status) IsFinal() bool { return s != StatusPending }

func (s Status) valid() bool {
	_, ok := statuses[s]
	return ok
}
