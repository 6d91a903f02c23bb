package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

// Delivery is the aggregate root of one shipment order.
//
// Invariants (checked on construction, restore and every mutation):
//   - product is non-empty; recipient and courier references are valid UUIDs
//   - endDate set ⇒ startDate set and startDate ≤ endDate
//   - canceledAt set ⇒ endDate absent
//
// Status is derived from the timestamps (see StatusOf); there is no status field.
type Delivery struct {
	id          kernel.UUID
	product     string
	recipientID kernel.UUID
	courierID   kernel.UUID
	signatureID *kernel.UUID
	startDate   *time.Time
	endDate     *time.Time
	canceledAt  *time.Time

	// version is the optimistic concurrency token assigned by the storage layer.
	// Zero means the delivery has never been persisted.
	version int

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in the Created state. All field errors are
// returned together.
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), "Laptop", recipientID, courierID)
//	if err != nil {
//	    return nil, err // errs.ValueIsRequiredError / errs.ValueIsInvalidError
//	}
//	d.Status() // delivery.Created
func NewDelivery(id kernel.UUID, product string, recipientID, courierID kernel.UUID) (*Delivery, error) {
	d := &Delivery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setProduct(product),
		d.setRecipient(recipientID),
		d.setCourier(courierID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery from persisted state. It applies the same
// field validation as NewDelivery and additionally rejects timestamp
// combinations that break the lifecycle invariants.
func RestoreDelivery(
	id kernel.UUID,
	product string,
	recipientID, courierID kernel.UUID,
	signatureID *kernel.UUID,
	startDate, endDate, canceledAt *time.Time,
	version int,
) (*Delivery, error) {
	d, err := NewDelivery(id, product, recipientID, courierID)
	if err != nil {
		return nil, err
	}

	if signatureID != nil {
		if err = d.setSignature(*signatureID); err != nil {
			return nil, err
		}
	}

	if err = checkTimeline(startDate, endDate, canceledAt); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}

	d.startDate = copyTime(startDate)
	d.endDate = copyTime(endDate)
	d.canceledAt = copyTime(canceledAt)
	d.version = version

	return d, nil
}

// Validate returns ErrDeliveryIsNotConstructed for nil or zero-value deliveries.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID { return d.id }

func (d *Delivery) Product() string { return d.product }

func (d *Delivery) RecipientID() kernel.UUID { return d.recipientID }

func (d *Delivery) CourierID() kernel.UUID { return d.courierID }

// SignatureID is nil until the delivery is completed (or a signature is patched in).
func (d *Delivery) SignatureID() *kernel.UUID {
	if d.signatureID == nil {
		return nil
	}
	id := *d.signatureID
	return &id
}

// StartDate is the pick-up time, nil before pick-up.
func (d *Delivery) StartDate() *time.Time { return copyTime(d.startDate) }

// EndDate is the completion time, nil before completion.
func (d *Delivery) EndDate() *time.Time { return copyTime(d.endDate) }

// CanceledAt is the cancellation time, nil unless canceled.
func (d *Delivery) CanceledAt() *time.Time { return copyTime(d.canceledAt) }

// Version returns the storage version this snapshot was read at.
func (d *Delivery) Version() int { return d.version }

// SetVersion records the version the storage layer assigned on write.
// Only repositories call it.
func (d *Delivery) SetVersion(version int) { d.version = version }

// Status derives the lifecycle state from the timestamps.
func (d *Delivery) Status() Status {
	return StatusOf(d.startDate, d.endDate, d.canceledAt)
}

// PickUp moves a Created delivery to PickedUp, stamping the start date.
func (d *Delivery) PickUp(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !CanPickUp(d) {
		return rejection(d.Status().ValidatePickUp(), "pick up", d.Status())
	}

	d.startDate = &at
	return nil
}

// Complete moves a PickedUp delivery to Completed, stamping the end date and
// recording the recipient's signature. The end date is never earlier than the
// start date, even if the clock went backwards between the two transitions.
func (d *Delivery) Complete(signatureID kernel.UUID, at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !CanComplete(d) {
		return rejection(d.Status().ValidateComplete(), "complete", d.Status())
	}
	if err := signatureID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("signature", err)
	}

	end := at
	if end.Before(*d.startDate) {
		end = *d.startDate
	}

	d.signatureID = &signatureID
	d.endDate = &end
	return nil
}

// Cancel moves a Created or PickedUp delivery to Canceled. A canceled delivery
// is never deleted; it stays readable but rejects every further change.
func (d *Delivery) Cancel(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !CanCancel(d) {
		return rejection(d.Status().ValidateCancel(), "cancel", d.Status())
	}

	d.canceledAt = &at
	return nil
}

// Update applies a partial change to any mutable field. The patch is applied
// to a copy first; if the result breaks an invariant the delivery is left
// untouched and the validation errors are returned joined.
func (d *Delivery) Update(patch Patch) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !CanMutateFields(d) {
		return rejection(d.Status().ValidateUpdate(), "update", d.Status())
	}

	next := *d
	var fieldErrs []error
	if patch.Product != nil {
		fieldErrs = append(fieldErrs, next.setProduct(*patch.Product))
	}
	if patch.RecipientID != nil {
		fieldErrs = append(fieldErrs, next.setRecipient(*patch.RecipientID))
	}
	if patch.CourierID != nil {
		fieldErrs = append(fieldErrs, next.setCourier(*patch.CourierID))
	}
	if patch.SignatureID != nil {
		fieldErrs = append(fieldErrs, next.setSignature(*patch.SignatureID))
	}
	if patch.StartDate != nil {
		next.startDate = copyTime(patch.StartDate)
	}
	if patch.EndDate != nil {
		next.endDate = copyTime(patch.EndDate)
	}
	if err := errors.Join(fieldErrs...); err != nil {
		return err
	}
	if err := checkTimeline(next.startDate, next.endDate, next.canceledAt); err != nil {
		return err
	}

	*d = next
	return nil
}

// rejection returns the specific reason computed from the status, falling back
// to a generic invalid-state error if the guard and the status table disagree.
func rejection(reason error, action string, s Status) error {
	if reason != nil {
		return reason
	}
	return errs.NewInvalidStateError(action, s.String())
}

// checkTimeline enforces the timestamp invariants of the aggregate.
func checkTimeline(startDate, endDate, canceledAt *time.Time) error {
	if endDate != nil && startDate == nil {
		return errs.NewValueIsInvalidErrorWithCause("end date", errors.New("end date requires a start date"))
	}
	if endDate != nil && endDate.Before(*startDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"end date",
			fmt.Errorf("%s precedes start date %s", endDate.Format(time.RFC3339Nano), startDate.Format(time.RFC3339Nano)),
		)
	}
	if canceledAt != nil && endDate != nil {
		return errs.NewValueIsInvalidErrorWithCause("canceled at", errors.New("a completed delivery cannot be canceled"))
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setProduct(product string) error {
	product = strings.TrimSpace(product)
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	d.product = product
	return nil
}

func (d *Delivery) setRecipient(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	d.recipientID = recipientID
	return nil
}

func (d *Delivery) setCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier", err)
	}
	d.courierID = courierID
	return nil
}

func (d *Delivery) setSignature(signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("signature", err)
	}
	d.signatureID = &signatureID
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
