package commands

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand records the hand-over to the recipient together with
// a reference to the recipient's signature file.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	signatureID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(deliveryID, signatureID kernel.UUID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setSignatureID(signatureID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CompleteDeliveryCommand) SignatureID() kernel.UUID {
	return c.signatureID
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CompleteDeliveryCommand) setSignatureID(signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("signature", err)
	}

	c.signatureID = signatureID
	return nil
}
