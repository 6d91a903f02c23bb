package queries

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrHasOpenProblemsQueryIsNotConstructed = errors.New(
	"HasOpenProblemsQuery must be created via NewHasOpenProblemsQuery constructor",
)

// HasOpenProblemsQuery asks whether any problem was reported for a delivery.
type HasOpenProblemsQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewHasOpenProblemsQuery(deliveryID kernel.UUID) (HasOpenProblemsQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return HasOpenProblemsQuery{}, err
	}

	return HasOpenProblemsQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q HasOpenProblemsQuery) Validate() error {
	return q.guard.Validate(ErrHasOpenProblemsQueryIsNotConstructed)
}

func (q HasOpenProblemsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
