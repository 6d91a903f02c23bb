package commands

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand stops a delivery that has not been completed. The
// record is kept; cancellation is a state, not a deletion.
type CancelDeliveryCommand struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelDeliveryCommand(deliveryID kernel.UUID) (CancelDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return CancelDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
