package commands

import (
	"errors"
	"strings"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand registers a new delivery awaiting pick-up.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand("Laptop", recipientID, courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//	d, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	product     string
	recipientID kernel.UUID
	courierID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand trims product and rejects it when blank.
func NewCreateDeliveryCommand(product string, recipientID, courierID kernel.UUID) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProduct(product),
		cmd.setRecipientID(recipientID),
		cmd.setCourierID(courierID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Product() string {
	return c.product
}

func (c CreateDeliveryCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c CreateDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *CreateDeliveryCommand) setProduct(product string) error {
	product = strings.TrimSpace(product)
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	c.product = product
	return nil
}

func (c *CreateDeliveryCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier", err)
	}

	c.courierID = courierID
	return nil
}
