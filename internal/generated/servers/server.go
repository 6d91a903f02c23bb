package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List deliveries that are not canceled, newest first
	// (GET /api/v1/deliveries)
	GetDeliveries(ctx echo.Context, params GetDeliveriesParams) error
	// Create a delivery
	// (POST /api/v1/deliveries)
	CreateDelivery(ctx echo.Context) error
	// List in-transit deliveries that have reported problems
	// (GET /api/v1/deliveries/problems)
	GetDeliveriesWithProblems(ctx echo.Context, params GetDeliveriesWithProblemsParams) error
	// Cancel a delivery; the record is kept
	// (DELETE /api/v1/deliveries/{id})
	CancelDelivery(ctx echo.Context, id DeliveryID) error
	// Get a delivery with its current state
	// (GET /api/v1/deliveries/{id})
	GetDelivery(ctx echo.Context, id DeliveryID) error
	// Change fields of a delivery
	// (PUT /api/v1/deliveries/{id})
	UpdateDelivery(ctx echo.Context, id DeliveryID) error
	// Record the hand-over together with the recipient's signature
	// (POST /api/v1/deliveries/{id}/complete)
	CompleteDelivery(ctx echo.Context, id DeliveryID) error
	// Record that the courier picked the delivery up
	// (POST /api/v1/deliveries/{id}/pickup)
	PickUpDelivery(ctx echo.Context, id DeliveryID) error
	// List the problems of a delivery, oldest first
	// (GET /api/v1/deliveries/{id}/problems)
	ListProblems(ctx echo.Context, id DeliveryID, params ListProblemsParams) error
	// Report a problem with a delivery in transit
	// (POST /api/v1/deliveries/{id}/problems)
	ReportProblem(ctx echo.Context, id DeliveryID) error
	// Tell whether a delivery has any reported problem
	// (GET /api/v1/deliveries/{id}/problems/open)
	HasOpenProblems(ctx echo.Context, id DeliveryID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliveries(ctx echo.Context) error {
	var params GetDeliveriesParams
	if err := bindPaging(ctx, &params.Page, &params.PageSize); err != nil {
		return err
	}
	return w.Handler.GetDeliveries(ctx, params)
}

// CreateDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDelivery(ctx echo.Context) error {
	return w.Handler.CreateDelivery(ctx)
}

// GetDeliveriesWithProblems converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliveriesWithProblems(ctx echo.Context) error {
	var params GetDeliveriesWithProblemsParams
	if err := bindPaging(ctx, &params.Page, &params.PageSize); err != nil {
		return err
	}
	return w.Handler.GetDeliveriesWithProblems(ctx, params)
}

// CancelDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CancelDelivery(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelDelivery(ctx, id)
}

// GetDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDelivery(ctx, id)
}

// UpdateDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDelivery(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateDelivery(ctx, id)
}

// CompleteDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteDelivery(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteDelivery(ctx, id)
}

// PickUpDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) PickUpDelivery(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PickUpDelivery(ctx, id)
}

// ListProblems converts echo context to params.
func (w *ServerInterfaceWrapper) ListProblems(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	var params ListProblemsParams
	if err := bindPaging(ctx, &params.Page, &params.PageSize); err != nil {
		return err
	}
	return w.Handler.ListProblems(ctx, id, params)
}

// ReportProblem converts echo context to params.
func (w *ServerInterfaceWrapper) ReportProblem(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReportProblem(ctx, id)
}

// HasOpenProblems converts echo context to params.
func (w *ServerInterfaceWrapper) HasOpenProblems(ctx echo.Context) error {
	id, err := bindDeliveryID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.HasOpenProblems(ctx, id)
}

func bindDeliveryID(ctx echo.Context) (DeliveryID, error) {
	var id DeliveryID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindPaging(ctx echo.Context, page, pageSize **int) error {
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "pageSize", ctx.QueryParams(), pageSize); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pageSize: %s", err))
	}
	return nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/deliveries", wrapper.GetDeliveries)
	router.POST(baseURL+"/api/v1/deliveries", wrapper.CreateDelivery)
	router.GET(baseURL+"/api/v1/deliveries/problems", wrapper.GetDeliveriesWithProblems)
	router.DELETE(baseURL+"/api/v1/deliveries/:id", wrapper.CancelDelivery)
	router.GET(baseURL+"/api/v1/deliveries/:id", wrapper.GetDelivery)
	router.PUT(baseURL+"/api/v1/deliveries/:id", wrapper.UpdateDelivery)
	router.POST(baseURL+"/api/v1/deliveries/:id/complete", wrapper.CompleteDelivery)
	router.POST(baseURL+"/api/v1/deliveries/:id/pickup", wrapper.PickUpDelivery)
	router.GET(baseURL+"/api/v1/deliveries/:id/problems", wrapper.ListProblems)
	router.POST(baseURL+"/api/v1/deliveries/:id/problems", wrapper.ReportProblem)
	router.GET(baseURL+"/api/v1/deliveries/:id/problems/open", wrapper.HasOpenProblems)
}
