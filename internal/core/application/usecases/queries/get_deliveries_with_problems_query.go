package queries

import (
	"errors"

	"deliverytracking/internal/pkg/guard"
)

var ErrGetDeliveriesWithProblemsQueryIsNotConstructed = errors.New(
	"GetDeliveriesWithProblemsQuery must be created via NewGetDeliveriesWithProblemsQuery constructor",
)

// GetDeliveriesWithProblemsQuery lists in-transit deliveries that have at
// least one reported problem.
type GetDeliveriesWithProblemsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewGetDeliveriesWithProblemsQuery(page Page) GetDeliveriesWithProblemsQuery {
	return GetDeliveriesWithProblemsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

func (q GetDeliveriesWithProblemsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesWithProblemsQueryIsNotConstructed)
}

func (q GetDeliveriesWithProblemsQuery) Page() Page {
	return q.page
}
