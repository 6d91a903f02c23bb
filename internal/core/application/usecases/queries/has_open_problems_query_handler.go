package queries

import (
	"context"

	"deliverytracking/internal/core/domain/services"
	"deliverytracking/internal/core/ports"
)

// HasOpenProblemsQueryHandler stays true once a problem was reported,
// whatever happens to the delivery afterwards.
type HasOpenProblemsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	registry   services.ProblemRegistry
}

func NewHasOpenProblemsQueryHandler(uowFactory ports.UnitOfWorkFactory, registry services.ProblemRegistry) HasOpenProblemsQueryHandler {
	return HasOpenProblemsQueryHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

func (h HasOpenProblemsQueryHandler) Handle(ctx context.Context, query HasOpenProblemsQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()

	if _, err := uow.DeliveryRepository().Get(ctx, query.DeliveryID()); err != nil {
		return false, err
	}

	problems, err := uow.ProblemRepository().ListByDelivery(ctx, query.DeliveryID())
	if err != nil {
		return false, err
	}

	return h.registry.HasOpenProblems(problems), nil
}
