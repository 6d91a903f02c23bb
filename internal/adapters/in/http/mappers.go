package http

import (
	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toDelivery(d queries.DeliveryResponse) servers.Delivery {
	res := servers.Delivery{
		Id:          d.ID.Bytes(),
		Product:     d.Product,
		RecipientId: d.RecipientID.Bytes(),
		CourierId:   d.CourierID.Bytes(),
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		CanceledAt:  d.CanceledAt,
		Status:      servers.DeliveryStatus(d.Status.String()),
		Version:     d.Version,
	}
	if d.SignatureID != nil {
		sig := d.SignatureID.Bytes()
		res.SignatureId = &sig
	}
	return res
}

func toSummaries(rows []queries.DeliverySummaryResponse) []servers.DeliverySummary {
	res := make([]servers.DeliverySummary, 0, len(rows))
	for _, r := range rows {
		res = append(res, servers.DeliverySummary{
			Id:           r.ID.Bytes(),
			Product:      r.Product,
			RecipientId:  r.RecipientID.Bytes(),
			CourierId:    r.CourierID.Bytes(),
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			Status:       servers.DeliveryStatus(r.Status.String()),
			ProblemCount: r.ProblemCount,
		})
	}
	return res
}

func toProblem(p queries.ProblemResponse) servers.Problem {
	return servers.Problem{
		Id:          p.ID.Bytes(),
		DeliveryId:  p.DeliveryID.Bytes(),
		Description: p.Description,
		ReportedAt:  p.ReportedAt,
	}
}

func toPatch(body servers.DeliveryPatch) delivery.Patch {
	patch := delivery.Patch{
		Product:   body.Product,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	}
	patch.RecipientID = optionalUUID(body.RecipientId)
	patch.CourierID = optionalUUID(body.CourierId)
	patch.SignatureID = optionalUUID(body.SignatureId)

	if patch.StartDate != nil {
		v := patch.StartDate.UTC()
		patch.StartDate = &v
	}
	if patch.EndDate != nil {
		v := patch.EndDate.UTC()
		patch.EndDate = &v
	}
	return patch
}

func optionalUUID(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	u := kernelUUID(*id)
	return &u
}

// pageFromParams applies defaultSize when the client sends no page size.
func pageFromParams(number, size *int, defaultSize int) (queries.Page, error) {
	n, s := 1, defaultSize
	if number != nil {
		n = *number
	}
	if size != nil {
		s = *size
	}
	return queries.NewPage(n, s)
}
