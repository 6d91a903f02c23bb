package queries

import (
	"errors"
	"time"

	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

var ErrGetStaleDeliveriesQueryIsNotConstructed = errors.New(
	"GetStaleDeliveriesQuery must be created via NewGetStaleDeliveriesQuery constructor",
)

// GetStaleDeliveriesQuery lists deliveries still in transit that were picked
// up before a cutoff, longest in transit first.
type GetStaleDeliveriesQuery struct {
	pickedUpBefore time.Time
	page           Page

	guard guard.ConstructorGuard
}

func NewGetStaleDeliveriesQuery(pickedUpBefore time.Time, page Page) (GetStaleDeliveriesQuery, error) {
	if pickedUpBefore.IsZero() {
		return GetStaleDeliveriesQuery{}, errs.NewValueIsRequiredError("picked up before")
	}

	return GetStaleDeliveriesQuery{
		pickedUpBefore: pickedUpBefore.UTC(),
		page:           page,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetStaleDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleDeliveriesQueryIsNotConstructed)
}

func (q GetStaleDeliveriesQuery) PickedUpBefore() time.Time {
	return q.pickedUpBefore
}

func (q GetStaleDeliveriesQuery) Page() Page {
	return q.page
}
