package commands

import (
	"errors"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand changes any subset of a delivery's mutable fields.
// Invariants of the resulting record are checked by the aggregate.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	patch      delivery.Patch

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand rejects a patch that changes nothing.
func NewUpdateDeliveryCommand(deliveryID kernel.UUID, patch delivery.Patch) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryCommand) Patch() delivery.Patch {
	return c.patch
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryCommand) setPatch(patch delivery.Patch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("at least one field to update")
	}

	c.patch = patch
	return nil
}
