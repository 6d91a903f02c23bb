package problem

import (
	"errors"
	"slices"
	"strings"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

// ErrProblemIsNotConstructed is returned when a Problem was not built by NewProblem.
var ErrProblemIsNotConstructed = errors.New("Problem must be created via NewProblem")

// Problem is immutable once created.
type Problem struct {
	id          kernel.UUID
	deliveryID  kernel.UUID
	description string
	reportedAt  time.Time

	guard guard.ConstructorGuard
}

// NewProblem validates every field and returns the joined errors. The
// description is trimmed; a blank one is rejected.
func NewProblem(id, deliveryID kernel.UUID, description string, reportedAt time.Time) (*Problem, error) {
	p := &Problem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setDelivery(deliveryID),
		p.setDescription(description),
		p.setReportedAt(reportedAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Problem) Validate() error {
	if p == nil {
		return ErrProblemIsNotConstructed
	}
	return p.guard.Validate(ErrProblemIsNotConstructed)
}

func (p *Problem) ID() kernel.UUID { return p.id }

func (p *Problem) DeliveryID() kernel.UUID { return p.deliveryID }

func (p *Problem) Description() string { return p.description }

func (p *Problem) ReportedAt() time.Time { return p.reportedAt }

func (p *Problem) IsEqual(other *Problem) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// SortByReportedAt orders problems oldest first in place. Problems reported in
// the same instant are ordered by id so listings are deterministic.
func SortByReportedAt(problems []*Problem) {
	slices.SortStableFunc(problems, func(a, b *Problem) int {
		if c := a.reportedAt.Compare(b.reportedAt); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})
}

func (p *Problem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Problem) setDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery", err)
	}
	p.deliveryID = deliveryID
	return nil
}

func (p *Problem) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Problem) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return errs.NewValueIsRequiredError("reported at")
	}
	p.reportedAt = reportedAt
	return nil
}
