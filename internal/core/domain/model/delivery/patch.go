package delivery

import (
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
)

// Patch is a partial update of a delivery. Nil fields are left unchanged.
// Timestamps may be set directly through a patch; the resulting record must
// still satisfy the timeline invariants.
type Patch struct {
	Product     *string
	RecipientID *kernel.UUID
	CourierID   *kernel.UUID
	SignatureID *kernel.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Product == nil &&
		p.RecipientID == nil &&
		p.CourierID == nil &&
		p.SignatureID == nil &&
		p.StartDate == nil &&
		p.EndDate == nil
}
