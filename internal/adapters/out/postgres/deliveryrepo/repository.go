package deliveryrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deliverytracking/internal/adapters/out/postgres/pgerrs"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	lockRows bool
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Option configures a GormDeliveryRepository.
type Option func(*GormDeliveryRepository)

// WithRowLocking makes Get read with SELECT ... FOR UPDATE. Only meaningful
// when db is a transaction.
func WithRowLocking() Option {
	return func(r *GormDeliveryRepository) {
		r.lockRows = true
	}
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker, opts ...Option) *GormDeliveryRepository {
	r := &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add inserts a new delivery and sets its version to 1.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewStorageError("add delivery: duplicate id "+aggregate.ID().String(), err)
		}
		return errs.NewStorageError("add delivery", err)
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the aggregate only if the stored version is the one it was
// read at, then bumps the version on both sides.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"product":      dto.Product,
			"recipient_id": dto.RecipientID,
			"courier_id":   dto.CourierID,
			"signature_id": dto.SignatureID,
			"start_date":   dto.StartDate,
			"end_date":     dto.EndDate,
			"canceled_at":  dto.CanceledAt,
			"version":      gorm.Expr("version + 1"),
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return errs.NewStorageError("update delivery", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, aggregate)
	}

	aggregate.SetVersion(dto.Version + 1)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// explainMissedUpdate tells a missing row apart from a stale version.
func (r *GormDeliveryRepository) explainMissedUpdate(ctx context.Context, aggregate *delivery.Delivery) error {
	var versions []int
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Pluck("version", &versions).Error
	if err != nil {
		return errs.NewStorageError("update delivery", err)
	}
	if len(versions) == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	return errs.NewStorageError(
		"update delivery",
		errs.NewVersionIsInvalidErrorWithCause(
			"delivery",
			fmt.Errorf("read at version %d, stored version is %d", aggregate.Version(), versions[0]),
		),
	)
}

// Get loads a delivery by id. With row locking enabled the row stays locked
// until the surrounding transaction ends.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx)
	if r.lockRows {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto DeliveryDTO
	if err := q.Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, errs.NewStorageError("get delivery", err)
	}

	return toDomain(dto)
}
