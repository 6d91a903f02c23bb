// Package ports defines the contracts between the delivery domain and the
// infrastructure that stores deliveries and problems or verifies signatures.
// Adapters implement them; command and query handlers depend only on them.
package ports

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery and assigns its first version.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists the current state of an existing delivery. The write
	// succeeds only if the stored version still equals aggregate.Version();
	// otherwise it fails with errs.ErrVersionIsInvalid inside an
	// *errs.StorageError. On success the new version is set on the aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get loads a delivery by id, or returns *errs.ObjectNotFoundError. Inside
	// a transaction the row stays locked until commit or rollback, so a
	// load, decide and save sequence is atomic per delivery.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
}
