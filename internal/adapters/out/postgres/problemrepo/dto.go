// Package problemrepo persists delivery problems with GORM. The table is
// append-only and references deliveries with ON DELETE RESTRICT, so problems
// are never removed together with their delivery.
package problemrepo

import (
	"time"

	"deliverytracking/internal/adapters/out/postgres/deliveryrepo"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"

	"github.com/google/uuid"
)

type ProblemDTO struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID                 `gorm:"type:uuid;not null;index:idx_delivery_problems_delivery_reported,priority:1"`
	Delivery    *deliveryrepo.DeliveryDTO `gorm:"foreignKey:DeliveryID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Description string                    `gorm:"type:text;not null"`
	ReportedAt  time.Time                 `gorm:"type:timestamptz;not null;index:idx_delivery_problems_delivery_reported,priority:2"`
}

func (ProblemDTO) TableName() string {
	return "delivery_problems"
}

func fromDomain(p *problem.Problem) ProblemDTO {
	return ProblemDTO{
		ID:          p.ID().Bytes(),
		DeliveryID:  p.DeliveryID().Bytes(),
		Description: p.Description(),
		ReportedAt:  p.ReportedAt(),
	}
}

func toDomain(dto ProblemDTO) (*problem.Problem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return problem.NewProblem(id, deliveryID, dto.Description, dto.ReportedAt.UTC())
}
