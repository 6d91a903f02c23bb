// Package deliveryrepo persists delivery aggregates with GORM. Writes are
// guarded by an optimistic version column; reads inside a transaction take a
// row lock so a load, decide and save sequence cannot interleave with another
// writer of the same delivery.
package deliveryrepo

import (
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the row shape of the deliveries table. Status is not stored;
// it is derived from the three lifecycle timestamps.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Product     string     `gorm:"type:text;not null"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	SignatureID *uuid.UUID `gorm:"type:uuid"`
	StartDate   *time.Time `gorm:"type:timestamptz"`
	EndDate     *time.Time `gorm:"type:timestamptz"`
	CanceledAt  *time.Time `gorm:"type:timestamptz;index"`
	Version     int        `gorm:"not null;default:1"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;not null;index"`
	UpdatedAt   time.Time  `gorm:"type:timestamptz;not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var signatureID *uuid.UUID
	if id := d.SignatureID(); id != nil {
		raw := id.Bytes()
		signatureID = &raw
	}

	return DeliveryDTO{
		ID:          d.ID().Bytes(),
		Product:     d.Product(),
		RecipientID: d.RecipientID().Bytes(),
		CourierID:   d.CourierID().Bytes(),
		SignatureID: signatureID,
		StartDate:   d.StartDate(),
		EndDate:     d.EndDate(),
		CanceledAt:  d.CanceledAt(),
		Version:     d.Version(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	var signatureID *kernel.UUID
	if dto.SignatureID != nil {
		sID, sigErr := kernel.UUIDFromBytes((*dto.SignatureID)[:])
		if sigErr != nil {
			return nil, sigErr
		}
		signatureID = &sID
	}

	return delivery.RestoreDelivery(
		id,
		dto.Product,
		recipientID,
		courierID,
		signatureID,
		utc(dto.StartDate),
		utc(dto.EndDate),
		utc(dto.CanceledAt),
		dto.Version,
	)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
