package commands

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/services"
)

// CreateDeliveryCommandHandler persists a new delivery in the Created state.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	lifecycle  services.DeliveryLifecycle
}

func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	lifecycle services.DeliveryLifecycle,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle returns the stored delivery with its first version set.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := h.lifecycle.Create(cmd.Product(), cmd.RecipientID(), cmd.CourierID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
