package commands

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/services"
)

// CancelDeliveryCommandHandler moves a Created or PickedUp delivery to Canceled.
// A second cancellation fails with delivery.ErrAlreadyCanceled and leaves the
// stored record as it was.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	lifecycle  services.DeliveryLifecycle
}

func NewCancelDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	lifecycle services.DeliveryLifecycle,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionDelivery(ctx, h.uowFactory, cmd.DeliveryID(), h.lifecycle.Cancel)
}
