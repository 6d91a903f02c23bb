package queries

import (
	"context"

	"deliverytracking/internal/core/ports"
)

// GetDeliveryQueryHandler returns errs.ObjectNotFoundError for unknown ids.
type GetDeliveryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetDeliveryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{uowFactory: uowFactory}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	d, err := h.uowFactory.Create().DeliveryRepository().Get(ctx, query.DeliveryID())
	if err != nil {
		return DeliveryResponse{}, err
	}

	return NewDeliveryResponse(d), nil
}
