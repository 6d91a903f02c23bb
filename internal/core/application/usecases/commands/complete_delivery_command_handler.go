package commands

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/services"
	"deliverytracking/internal/core/ports"
)

// CompleteDeliveryCommandHandler moves a PickedUp delivery to Completed.
// The signature is verified against the file service only once the locked
// delivery is known to be completable, so state errors always win over
// signature or file service errors.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	lifecycle  services.DeliveryLifecycle
	signatures ports.SignatureVerifier
}

func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	lifecycle services.DeliveryLifecycle,
	signatures ports.SignatureVerifier,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		signatures: signatures,
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionDelivery(ctx, h.uowFactory, cmd.DeliveryID(), func(d *delivery.Delivery) error {
		if err := d.Status().ValidateComplete(); err != nil {
			return err
		}
		if err := h.signatures.Verify(ctx, cmd.SignatureID()); err != nil {
			return err
		}
		return h.lifecycle.Complete(d, cmd.SignatureID())
	})
}
