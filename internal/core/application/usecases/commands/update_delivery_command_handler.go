package commands

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/services"
)

// UpdateDeliveryCommandHandler applies a field patch to a non-canceled delivery.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	lifecycle  services.DeliveryLifecycle
}

func NewUpdateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	lifecycle services.DeliveryLifecycle,
) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle fails with delivery.ErrCanceled for canceled deliveries and with a
// validation error when the patched record would break an invariant.
func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionDelivery(ctx, h.uowFactory, cmd.DeliveryID(), func(d *delivery.Delivery) error {
		return h.lifecycle.Update(d, cmd.Patch())
	})
}
