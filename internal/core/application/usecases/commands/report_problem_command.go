package commands

import (
	"errors"
	"strings"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

var ErrReportProblemCommandIsNotConstructed = errors.New(
	"ReportProblemCommand must be created via NewReportProblemCommand constructor",
)

// ReportProblemCommand records an issue with an in-transit delivery.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

func NewReportProblemCommand(deliveryID kernel.UUID, description string) (ReportProblemCommand, error) {
	cmd := ReportProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDescription(description),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return cmd, nil
}

func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

func (c ReportProblemCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ReportProblemCommand) Description() string {
	return c.description
}

func (c *ReportProblemCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ReportProblemCommand) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
