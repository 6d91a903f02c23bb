package delivery

import (
	"fmt"
	"time"

	"deliverytracking/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery. It is computed from the
// timestamps by StatusOf and never persisted.
type Status int

const (
	// Unknown is the zero value and is never derived for a constructed delivery.
	Unknown Status = iota

	// Created: no timestamps set, waiting for the courier.
	Created

	// PickedUp: start date set, in transit.
	PickedUp

	// Completed: end date set. Terminal.
	Completed

	// Canceled: cancellation date set. Terminal.
	Canceled
)

// StatusOf derives the status from the lifecycle timestamps. Cancellation wins
// over completion, completion over pick-up.
func StatusOf(startDate, endDate, canceledAt *time.Time) Status {
	switch {
	case canceledAt != nil:
		return Canceled
	case endDate != nil:
		return Completed
	case startDate != nil:
		return PickedUp
	default:
		return Created
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		PickedUp:  "PickedUp",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

// String implements fmt.Stringer. Out-of-range values print as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s == Unknown || s.String() == "Unknown" {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// ValidatePickUp names the reason a pick-up is illegal from s, or returns nil.
func (s Status) ValidatePickUp() error {
	switch s {
	case Created:
		return nil
	case PickedUp:
		return errs.NewInvalidStateErrorWithCause("pick up", s.String(), ErrAlreadyPickedUp)
	case Completed:
		return errs.NewInvalidStateErrorWithCause("pick up", s.String(), ErrAlreadyCompleted)
	case Canceled:
		return errs.NewInvalidStateErrorWithCause("pick up", s.String(), ErrAlreadyCanceled)
	default:
		return errs.NewInvalidStateError("pick up", s.String())
	}
}

// ValidateComplete names the reason a completion is illegal from s, or returns nil.
func (s Status) ValidateComplete() error {
	switch s {
	case PickedUp:
		return nil
	case Created:
		return errs.NewInvalidStateErrorWithCause("complete", s.String(), ErrNotPickedUp)
	case Completed:
		return errs.NewInvalidStateErrorWithCause("complete", s.String(), ErrAlreadyCompleted)
	case Canceled:
		return errs.NewInvalidStateErrorWithCause("complete", s.String(), ErrAlreadyCanceled)
	default:
		return errs.NewInvalidStateError("complete", s.String())
	}
}

// ValidateCancel names the reason a cancellation is illegal from s, or returns nil.
func (s Status) ValidateCancel() error {
	switch s {
	case Created, PickedUp:
		return nil
	case Completed:
		return errs.NewInvalidStateErrorWithCause("cancel", s.String(), ErrAlreadyCompleted)
	case Canceled:
		return errs.NewInvalidStateErrorWithCause("cancel", s.String(), ErrAlreadyCanceled)
	default:
		return errs.NewInvalidStateError("cancel", s.String())
	}
}

// ValidateReportProblem names the reason a problem report is illegal from s, or returns nil.
func (s Status) ValidateReportProblem() error {
	switch s {
	case PickedUp:
		return nil
	case Created:
		return errs.NewInvalidStateErrorWithCause("report problem", s.String(), ErrNotPickedUp)
	case Completed:
		return errs.NewInvalidStateErrorWithCause("report problem", s.String(), ErrAlreadyCompleted)
	case Canceled:
		return errs.NewInvalidStateErrorWithCause("report problem", s.String(), ErrCanceled)
	default:
		return errs.NewInvalidStateError("report problem", s.String())
	}
}

// ValidateUpdate names the reason a field update is illegal from s, or returns nil.
func (s Status) ValidateUpdate() error {
	switch s {
	case Created, PickedUp, Completed:
		return nil
	case Canceled:
		return errs.NewInvalidStateErrorWithCause("update", s.String(), ErrCanceled)
	default:
		return errs.NewInvalidStateError("update", s.String())
	}
}
