package queries

import (
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
)

// DeliveryResponse is the read model of one delivery with its derived status.
type DeliveryResponse struct {
	ID          kernel.UUID
	Product     string
	RecipientID kernel.UUID
	CourierID   kernel.UUID
	SignatureID *kernel.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	CanceledAt  *time.Time
	Status      delivery.Status
	Version     int
}

// NewDeliveryResponse copies the aggregate into its read model.
func NewDeliveryResponse(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:          d.ID(),
		Product:     d.Product(),
		RecipientID: d.RecipientID(),
		CourierID:   d.CourierID(),
		SignatureID: d.SignatureID(),
		StartDate:   d.StartDate(),
		EndDate:     d.EndDate(),
		CanceledAt:  d.CanceledAt(),
		Status:      d.Status(),
		Version:     d.Version(),
	}
}

// ProblemResponse is the read model of one reported problem.
type ProblemResponse struct {
	ID          kernel.UUID
	DeliveryID  kernel.UUID
	Description string
	ReportedAt  time.Time
}

func newProblemResponses(problems []*problem.Problem) []ProblemResponse {
	res := make([]ProblemResponse, 0, len(problems))
	for _, p := range problems {
		res = append(res, ProblemResponse{
			ID:          p.ID(),
			DeliveryID:  p.DeliveryID(),
			Description: p.Description(),
			ReportedAt:  p.ReportedAt(),
		})
	}
	return res
}
