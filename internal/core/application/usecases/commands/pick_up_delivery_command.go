package commands

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrPickUpDeliveryCommandIsNotConstructed = errors.New(
	"PickUpDeliveryCommand must be created via NewPickUpDeliveryCommand constructor",
)

// PickUpDeliveryCommand records that the courier collected the parcel.
type PickUpDeliveryCommand struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPickUpDeliveryCommand(deliveryID kernel.UUID) (PickUpDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return PickUpDeliveryCommand{}, err
	}

	return PickUpDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PickUpDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickUpDeliveryCommandIsNotConstructed)
}

func (c PickUpDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
