package commands

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/services"
)

// PickUpDeliveryCommandHandler moves a Created delivery to PickedUp.
//
// Example:
//
//	cmd, _ := NewPickUpDeliveryCommand(deliveryID)
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrAlreadyPickedUp):
//	    // second scan of the same parcel
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown delivery
//	}
type PickUpDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	lifecycle  services.DeliveryLifecycle
}

func NewPickUpDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	lifecycle services.DeliveryLifecycle,
) PickUpDeliveryCommandHandler {
	return PickUpDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

func (h PickUpDeliveryCommandHandler) Handle(ctx context.Context, cmd PickUpDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionDelivery(ctx, h.uowFactory, cmd.DeliveryID(), h.lifecycle.PickUp)
}
