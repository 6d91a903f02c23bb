package queries

import (
	"context"

	"deliverytracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveriesWithProblemsQueryHandler reads in-transit deliveries with
// problems, oldest pick-up first, so the longest-running issues lead.
type GetDeliveriesWithProblemsQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveriesWithProblemsQueryHandler(db *gorm.DB) GetDeliveriesWithProblemsQueryHandler {
	return GetDeliveriesWithProblemsQueryHandler{db: db}
}

func (h GetDeliveriesWithProblemsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesWithProblemsQuery,
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
			COUNT(p.id)
		FROM deliveries d
		JOIN delivery_problems p ON p.delivery_id = d.id
		WHERE d.start_date IS NOT NULL
			AND d.end_date IS NULL
			AND d.canceled_at IS NULL
		GROUP BY d.id
		ORDER BY d.start_date, d.id
		LIMIT ? OFFSET ?
	`, query.Page().Size(), query.Page().Offset()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list deliveries with problems", err)
	}
	defer rows.Close()

	return scanDeliverySummaries(rows)
}
