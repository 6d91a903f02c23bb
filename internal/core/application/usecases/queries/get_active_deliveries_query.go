package queries

import (
	"errors"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery lists deliveries that were not canceled, newest first.
type GetActiveDeliveriesQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewGetActiveDeliveriesQuery(page Page) GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

func (q GetActiveDeliveriesQuery) Page() Page {
	return q.page
}

// DeliverySummaryResponse is one row of a delivery list projection.
type DeliverySummaryResponse struct {
	ID           kernel.UUID
	Product      string
	RecipientID  kernel.UUID
	CourierID    kernel.UUID
	StartDate    *time.Time
	EndDate      *time.Time
	Status       delivery.Status
	ProblemCount int
}
