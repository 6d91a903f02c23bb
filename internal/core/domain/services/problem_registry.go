package services

import (
	"slices"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
)

// ProblemRegistry creates problem reports and reasons about a delivery's
// problem list. It never mutates the delivery itself.
type ProblemRegistry struct {
	clock kernel.Clock
}

// NewProblemRegistry falls back to the system clock when clock is nil.
func NewProblemRegistry(clock kernel.Clock) ProblemRegistry {
	if clock == nil {
		clock = kernel.NewSystemClock()
	}
	return ProblemRegistry{clock: clock}
}

// Report creates a problem against d. Only in-transit deliveries accept
// reports; otherwise the error carries delivery.ErrNotPickedUp,
// delivery.ErrAlreadyCompleted or delivery.ErrCanceled.
func (r ProblemRegistry) Report(d *delivery.Delivery, description string) (*problem.Problem, error) {
	if err := delivery.ValidateReportProblem(d); err != nil {
		return nil, err
	}
	return problem.NewProblem(kernel.NewUUID(), d.ID(), description, r.clock.Now())
}

// Sorted returns a copy of problems ordered by report time, oldest first.
func (r ProblemRegistry) Sorted(problems []*problem.Problem) []*problem.Problem {
	sorted := slices.Clone(problems)
	if sorted == nil {
		sorted = []*problem.Problem{}
	}
	problem.SortByReportedAt(sorted)
	return sorted
}

// HasOpenProblems reports whether any problem was ever recorded. Problems
// have no resolution state, so every recorded problem counts as open.
func (r ProblemRegistry) HasOpenProblems(problems []*problem.Problem) bool {
	return len(problems) > 0
}
