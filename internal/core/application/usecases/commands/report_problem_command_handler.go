package commands

import (
	"context"

	"deliverytracking/internal/core/domain/model/problem"
	"deliverytracking/internal/core/domain/services"
)

// ReportProblemCommandHandler appends a problem to an in-transit delivery.
// The delivery row stays locked until commit, so a concurrent cancel or
// complete cannot slip in between the eligibility check and the insert.
type ReportProblemCommandHandler struct {
	uowFactory UoWFactory
	registry   services.ProblemRegistry
}

func NewReportProblemCommandHandler(uowFactory UoWFactory, registry services.ProblemRegistry) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

func (h ReportProblemCommandHandler) Handle(ctx context.Context, cmd ReportProblemCommand) (*problem.Problem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	p, err := h.registry.Report(d, cmd.Description())
	if err != nil {
		return nil, err
	}

	if err = uow.ProblemRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
