package queries

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

var ErrListProblemsQueryIsNotConstructed = errors.New(
	"ListProblemsQuery must be created via NewListProblemsQuery constructor",
)

// ListProblemsQuery reads one page of the problems reported for a delivery.
type ListProblemsQuery struct {
	deliveryID kernel.UUID
	page       Page

	guard guard.ConstructorGuard
}

func NewListProblemsQuery(deliveryID kernel.UUID, page Page) (ListProblemsQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return ListProblemsQuery{}, err
	}
	if page.Size() == 0 {
		return ListProblemsQuery{}, errs.NewValueIsRequiredError("page")
	}

	return ListProblemsQuery{
		deliveryID: deliveryID,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListProblemsQuery) Validate() error {
	return q.guard.Validate(ErrListProblemsQueryIsNotConstructed)
}

func (q ListProblemsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q ListProblemsQuery) Page() Page {
	return q.page
}
