package ports

import (
	"context"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
)

// ProblemRepository defines the append-only persistence contract for problems.
type ProblemRepository interface {
	// Add persists a new problem. The owning delivery must exist.
	Add(ctx context.Context, aggregate *problem.Problem) error

	// ListByDelivery returns every problem recorded for deliveryID, oldest
	// first. An empty slice means none were reported.
	ListByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*problem.Problem, error)

	// ListPageByDelivery returns at most limit problems of deliveryID in the
	// same order, skipping the first offset.
	ListPageByDelivery(ctx context.Context, deliveryID kernel.UUID, limit, offset int) ([]*problem.Problem, error)
}
