package queries

import (
	"context"

	"deliverytracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStaleDeliveriesQueryHandler reads in-transit deliveries picked up before
// the query cutoff. Completed and canceled rows never count against the page.
type GetStaleDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetStaleDeliveriesQueryHandler(db *gorm.DB) GetStaleDeliveriesQueryHandler {
	return GetStaleDeliveriesQueryHandler{db: db}
}

func (h GetStaleDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetStaleDeliveriesQuery,
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
		WHERE d.start_date IS NOT NULL
			AND d.end_date IS NULL
			AND d.canceled_at IS NULL
			AND d.start_date < ?
		ORDER BY d.start_date, d.id
		LIMIT ? OFFSET ?
	`, query.PickedUpBefore(), query.Page().Size(), query.Page().Offset()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list stale deliveries", err)
	}
	defer rows.Close()

	return scanDeliverySummaries(rows)
}
