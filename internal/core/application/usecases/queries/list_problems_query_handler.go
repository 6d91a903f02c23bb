package queries

import (
	"context"

	"deliverytracking/internal/core/domain/services"
	"deliverytracking/internal/core/ports"
)

// ListProblemsQueryHandler returns one page of the problems of a delivery,
// oldest first. A delivery without problems yields an empty slice; only an
// unknown delivery is an error.
//
// Example:
//
//	page, _ := NewPage(1, DefaultProblemPageSize)
//	query, _ := NewListProblemsQuery(deliveryID, page)
//	problems, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such delivery
//	}
type ListProblemsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	registry   services.ProblemRegistry
}

func NewListProblemsQueryHandler(uowFactory ports.UnitOfWorkFactory, registry services.ProblemRegistry) ListProblemsQueryHandler {
	return ListProblemsQueryHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

func (h ListProblemsQueryHandler) Handle(ctx context.Context, query ListProblemsQuery) ([]ProblemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	if _, err := uow.DeliveryRepository().Get(ctx, query.DeliveryID()); err != nil {
		return nil, err
	}

	page := query.Page()
	problems, err := uow.ProblemRepository().ListPageByDelivery(ctx, query.DeliveryID(), page.Size(), page.Offset())
	if err != nil {
		return nil, err
	}

	return newProblemResponses(h.registry.Sorted(problems)), nil
}
