// Package servers holds the HTTP glue for the API described in openapi.json:
// request and response types, the ServerInterface the HTTP adapter
// implements, and the echo routing that binds path and query parameters.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for DeliveryStatus.
const (
	Canceled  DeliveryStatus = "Canceled"
	Completed DeliveryStatus = "Completed"
	Created   DeliveryStatus = "Created"
	PickedUp  DeliveryStatus = "PickedUp"
)

// CompleteDelivery defines model for CompleteDelivery.
type CompleteDelivery struct {
	SignatureId openapi_types.UUID `json:"signatureId"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	CanceledAt  *time.Time          `json:"canceledAt,omitempty"`
	CourierId   openapi_types.UUID  `json:"courierId"`
	EndDate     *time.Time          `json:"endDate,omitempty"`
	Id          openapi_types.UUID  `json:"id"`
	Product     string              `json:"product"`
	RecipientId openapi_types.UUID  `json:"recipientId"`
	SignatureId *openapi_types.UUID `json:"signatureId,omitempty"`
	StartDate   *time.Time          `json:"startDate,omitempty"`
	Status      DeliveryStatus      `json:"status"`
	Version     int                 `json:"version"`
}

// DeliveryPatch defines model for DeliveryPatch.
type DeliveryPatch struct {
	CourierId   *openapi_types.UUID `json:"courierId,omitempty"`
	EndDate     *time.Time          `json:"endDate,omitempty"`
	Product     *string             `json:"product,omitempty"`
	RecipientId *openapi_types.UUID `json:"recipientId,omitempty"`
	SignatureId *openapi_types.UUID `json:"signatureId,omitempty"`
	StartDate   *time.Time          `json:"startDate,omitempty"`
}

// DeliveryStatus defines model for DeliveryStatus.
type DeliveryStatus string

// DeliverySummary defines model for DeliverySummary.
type DeliverySummary struct {
	CourierId    openapi_types.UUID `json:"courierId"`
	EndDate      *time.Time         `json:"endDate,omitempty"`
	Id           openapi_types.UUID `json:"id"`
	ProblemCount int                `json:"problemCount"`
	Product      string             `json:"product"`
	RecipientId  openapi_types.UUID `json:"recipientId"`
	StartDate    *time.Time         `json:"startDate,omitempty"`
	Status       DeliveryStatus     `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDelivery defines model for NewDelivery.
type NewDelivery struct {
	CourierId   openapi_types.UUID `json:"courierId"`
	Product     string             `json:"product"`
	RecipientId openapi_types.UUID `json:"recipientId"`
}

// NewProblem defines model for NewProblem.
type NewProblem struct {
	Description string `json:"description"`
}

// OpenProblems defines model for OpenProblems.
type OpenProblems struct {
	HasOpenProblems bool `json:"hasOpenProblems"`
}

// Problem defines model for Problem.
type Problem struct {
	DeliveryId  openapi_types.UUID `json:"deliveryId"`
	Description string             `json:"description"`
	Id          openapi_types.UUID `json:"id"`
	ReportedAt  time.Time          `json:"reportedAt"`
}

// DeliveryID defines model for DeliveryID.
type DeliveryID = openapi_types.UUID

// Page defines model for Page.
type Page = int

// PageSize defines model for PageSize.
type PageSize = int

// ProblemPageSize defines model for ProblemPageSize.
type ProblemPageSize = int

// GetDeliveriesParams defines parameters for GetDeliveries.
type GetDeliveriesParams struct {
	Page     *Page     `form:"page,omitempty" json:"page,omitempty"`
	PageSize *PageSize `form:"pageSize,omitempty" json:"pageSize,omitempty"`
}

// GetDeliveriesWithProblemsParams defines parameters for GetDeliveriesWithProblems.
type GetDeliveriesWithProblemsParams struct {
	Page     *Page     `form:"page,omitempty" json:"page,omitempty"`
	PageSize *PageSize `form:"pageSize,omitempty" json:"pageSize,omitempty"`
}

// ListProblemsParams defines parameters for ListProblems.
type ListProblemsParams struct {
	Page     *Page            `form:"page,omitempty" json:"page,omitempty"`
	PageSize *ProblemPageSize `form:"pageSize,omitempty" json:"pageSize,omitempty"`
}

// CreateDeliveryJSONRequestBody defines body for CreateDelivery for application/json ContentType.
type CreateDeliveryJSONRequestBody = NewDelivery

// UpdateDeliveryJSONRequestBody defines body for UpdateDelivery for application/json ContentType.
type UpdateDeliveryJSONRequestBody = DeliveryPatch

// CompleteDeliveryJSONRequestBody defines body for CompleteDelivery for application/json ContentType.
type CompleteDeliveryJSONRequestBody = CompleteDelivery

// ReportProblemJSONRequestBody defines body for ReportProblem for application/json ContentType.
type ReportProblemJSONRequestBody = NewProblem
