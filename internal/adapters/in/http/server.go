package http

import (
	"context"
	"net/http"

	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
	"deliverytracking/internal/generated/servers"
	"deliverytracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler is the shape shared by every command and query handler.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	CreateDelivery   Handler[commands.CreateDeliveryCommand, *delivery.Delivery]
	UpdateDelivery   Handler[commands.UpdateDeliveryCommand, *delivery.Delivery]
	PickUpDelivery   Handler[commands.PickUpDeliveryCommand, *delivery.Delivery]
	CompleteDelivery Handler[commands.CompleteDeliveryCommand, *delivery.Delivery]
	CancelDelivery   Handler[commands.CancelDeliveryCommand, *delivery.Delivery]
	ReportProblem    Handler[commands.ReportProblemCommand, *problem.Problem]

	GetDelivery               Handler[queries.GetDeliveryQuery, queries.DeliveryResponse]
	ListProblems              Handler[queries.ListProblemsQuery, []queries.ProblemResponse]
	HasOpenProblems           Handler[queries.HasOpenProblemsQuery, bool]
	GetActiveDeliveries       Handler[queries.GetActiveDeliveriesQuery, []queries.DeliverySummaryResponse]
	GetDeliveriesWithProblems Handler[queries.GetDeliveriesWithProblemsQuery, []queries.DeliverySummaryResponse]
}

// Server implements servers.ServerInterface on top of the use cases.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// GetDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetDeliveries(ctx echo.Context, params servers.GetDeliveriesParams) error {
	page, err := pageFromParams(params.Page, params.PageSize, queries.DefaultPageSize)
	if err != nil {
		return err
	}

	rows, err := s.h.GetActiveDeliveries.Handle(ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery(page))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toSummaries(rows))
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body servers.CreateDeliveryJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		body.Product,
		kernelUUID(body.RecipientId),
		kernelUUID(body.CourierId),
	)
	if err != nil {
		return err
	}

	d, err := s.h.CreateDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toDelivery(queries.NewDeliveryResponse(d)))
}

// GetDeliveriesWithProblems handles GET /api/v1/deliveries/problems.
func (s *Server) GetDeliveriesWithProblems(ctx echo.Context, params servers.GetDeliveriesWithProblemsParams) error {
	page, err := pageFromParams(params.Page, params.PageSize, queries.DefaultPageSize)
	if err != nil {
		return err
	}

	rows, err := s.h.GetDeliveriesWithProblems.Handle(
		ctx.Request().Context(),
		queries.NewGetDeliveriesWithProblemsQuery(page),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toSummaries(rows))
}

// CancelDelivery handles DELETE /api/v1/deliveries/{id}. The delivery is
// marked canceled, never removed.
func (s *Server) CancelDelivery(ctx echo.Context, id servers.DeliveryID) error {
	cmd, err := commands.NewCancelDeliveryCommand(kernelUUID(id))
	if err != nil {
		return err
	}

	return respondDelivery(ctx, s.h.CancelDelivery, cmd)
}

// GetDelivery handles GET /api/v1/deliveries/{id}.
func (s *Server) GetDelivery(ctx echo.Context, id servers.DeliveryID) error {
	query, err := queries.NewGetDeliveryQuery(kernelUUID(id))
	if err != nil {
		return err
	}

	res, err := s.h.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toDelivery(res))
}

// UpdateDelivery handles PUT /api/v1/deliveries/{id}.
func (s *Server) UpdateDelivery(ctx echo.Context, id servers.DeliveryID) error {
	var body servers.UpdateDeliveryJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryCommand(kernelUUID(id), toPatch(body))
	if err != nil {
		return err
	}

	return respondDelivery(ctx, s.h.UpdateDelivery, cmd)
}

// CompleteDelivery handles POST /api/v1/deliveries/{id}/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, id servers.DeliveryID) error {
	var body servers.CompleteDeliveryJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(kernelUUID(id), kernelUUID(body.SignatureId))
	if err != nil {
		return err
	}

	return respondDelivery(ctx, s.h.CompleteDelivery, cmd)
}

// PickUpDelivery handles POST /api/v1/deliveries/{id}/pickup.
func (s *Server) PickUpDelivery(ctx echo.Context, id servers.DeliveryID) error {
	cmd, err := commands.NewPickUpDeliveryCommand(kernelUUID(id))
	if err != nil {
		return err
	}

	return respondDelivery(ctx, s.h.PickUpDelivery, cmd)
}

// ListProblems handles GET /api/v1/deliveries/{id}/problems.
func (s *Server) ListProblems(ctx echo.Context, id servers.DeliveryID, params servers.ListProblemsParams) error {
	page, err := pageFromParams(params.Page, params.PageSize, queries.DefaultProblemPageSize)
	if err != nil {
		return err
	}

	query, err := queries.NewListProblemsQuery(kernelUUID(id), page)
	if err != nil {
		return err
	}

	problems, err := s.h.ListProblems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	res := make([]servers.Problem, 0, len(problems))
	for _, p := range problems {
		res = append(res, toProblem(p))
	}
	return ctx.JSON(http.StatusOK, res)
}

// ReportProblem handles POST /api/v1/deliveries/{id}/problems.
func (s *Server) ReportProblem(ctx echo.Context, id servers.DeliveryID) error {
	var body servers.ReportProblemJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewReportProblemCommand(kernelUUID(id), body.Description)
	if err != nil {
		return err
	}

	p, err := s.h.ReportProblem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Problem{
		Id:          p.ID().Bytes(),
		DeliveryId:  p.DeliveryID().Bytes(),
		Description: p.Description(),
		ReportedAt:  p.ReportedAt(),
	})
}

// HasOpenProblems handles GET /api/v1/deliveries/{id}/problems/open.
func (s *Server) HasOpenProblems(ctx echo.Context, id servers.DeliveryID) error {
	query, err := queries.NewHasOpenProblemsQuery(kernelUUID(id))
	if err != nil {
		return err
	}

	open, err := s.h.HasOpenProblems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OpenProblems{HasOpenProblems: open})
}

// respondDelivery runs a delivery command and renders the resulting aggregate.
func respondDelivery[C any](ctx echo.Context, h Handler[C, *delivery.Delivery], cmd C) error {
	d, err := h.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toDelivery(queries.NewDeliveryResponse(d)))
}

func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

func kernelUUID(id servers.DeliveryID) kernel.UUID {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return u
}
