package queries

import (
	"context"
	"database/sql"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads the active deliveries projection.
//
// Example:
//
//	page, _ := NewPage(1, DefaultPageSize)
//	rows, err := handler.Handle(ctx, NewGetActiveDeliveriesQuery(page))
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]DeliverySummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.product,
			d.recipient_id,
			d.courier_id,
			d.start_date,
			d.end_date,
			(SELECT COUNT(*) FROM delivery_problems p WHERE p.delivery_id = d.id)
		FROM deliveries d
		WHERE d.canceled_at IS NULL
		ORDER BY d.created_at DESC, d.id
		LIMIT ? OFFSET ?
	`, query.Page().Size(), query.Page().Offset()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list active deliveries", err)
	}
	defer rows.Close()

	return scanDeliverySummaries(rows)
}

// scanDeliverySummaries reads rows of (id, product, recipient_id, courier_id,
// start_date, end_date, problem_count). Canceled rows never reach it, so the
// status is derived without the cancellation date.
func scanDeliverySummaries(rows *sql.Rows) ([]DeliverySummaryResponse, error) {
	res := make([]DeliverySummaryResponse, 0)

	for rows.Next() {
		var (
			id, recipientID, courierID uuid.UUID
			product                    string
			startDate, endDate         sql.NullTime
			problemCount               int
		)

		if err := rows.Scan(&id, &product, &recipientID, &courierID, &startDate, &endDate, &problemCount); err != nil {
			return nil, err
		}

		row := DeliverySummaryResponse{
			Product:      product,
			StartDate:    nullTime(startDate),
			EndDate:      nullTime(endDate),
			ProblemCount: problemCount,
		}
		row.Status = delivery.StatusOf(row.StartDate, row.EndDate, nil)

		var err error
		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
			return nil, err
		}
		if row.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}

		res = append(res, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
