package problemrepo

import (
	"context"
	"math"

	"deliverytracking/internal/adapters/out/postgres/pgerrs"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
	"deliverytracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProblemRepository implements ports.ProblemRepository using GORM.
type GormProblemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProblemRepository(db *gorm.DB, tracker aggregateTracker) *GormProblemRepository {
	return &GormProblemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a problem. A missing owning delivery is reported as
// *errs.ObjectNotFoundError.
func (r *GormProblemRepository) Add(ctx context.Context, aggregate *problem.Problem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error
	switch {
	case err == nil:
	case pgerrs.IsForeignKeyViolation(err):
		return errs.NewObjectNotFoundErrorWithCause("delivery", aggregate.DeliveryID().String(), err)
	default:
		return errs.NewStorageError("add problem", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ListByDelivery returns the problems of one delivery, oldest first.
func (r *GormProblemRepository) ListByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*problem.Problem, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProblemDTO
	err := r.byDelivery(ctx, deliveryID).Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("list problems", err)
	}

	return toDomainList(dtos)
}

// ListPageByDelivery returns one page of the problems of a delivery, oldest
// first.
func (r *GormProblemRepository) ListPageByDelivery(
	ctx context.Context, deliveryID kernel.UUID, limit, offset int,
) ([]*problem.Problem, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, math.MaxInt32)
	}
	if offset < 0 {
		return nil, errs.NewValueIsOutOfRangeError("offset", offset, 0, math.MaxInt)
	}

	var dtos []ProblemDTO
	err := r.byDelivery(ctx, deliveryID).Limit(limit).Offset(offset).Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("list problems", err)
	}

	return toDomainList(dtos)
}

func (r *GormProblemRepository) byDelivery(ctx context.Context, deliveryID kernel.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID.Bytes()).
		Order("reported_at, id")
}

func toDomainList(dtos []ProblemDTO) ([]*problem.Problem, error) {
	problems := make([]*problem.Problem, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return problems, nil
}
