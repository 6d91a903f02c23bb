package commands

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
)

// transitionDelivery loads the delivery inside a fresh transaction, applies
// change and saves the result. The row lock taken by Get is held until the
// deferred rollback or the commit, so concurrent transitions on the same
// delivery are serialized.
func transitionDelivery(
	ctx context.Context,
	uowFactory DeliveryUoWFactory,
	deliveryID kernel.UUID,
	change func(*delivery.Delivery) error,
) (*delivery.Delivery, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if err = change(d); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
