package services

import (
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
)

// DeliveryLifecycle applies state transitions to deliveries with timestamps
// from its clock.
//
// Example usage:
//
//	lifecycle := services.NewDeliveryLifecycle(kernel.NewSystemClock())
//	d, err := lifecycle.Create("Laptop", recipientID, courierID)
//	if err != nil {
//	    return err // validation error
//	}
//	if err = lifecycle.PickUp(d); err != nil {
//	    return err // *errs.InvalidStateError
//	}
type DeliveryLifecycle struct {
	clock kernel.Clock
}

// NewDeliveryLifecycle falls back to the system clock when clock is nil.
func NewDeliveryLifecycle(clock kernel.Clock) DeliveryLifecycle {
	if clock == nil {
		clock = kernel.NewSystemClock()
	}
	return DeliveryLifecycle{clock: clock}
}

// Create returns a new delivery in the Created state with a fresh identifier.
func (l DeliveryLifecycle) Create(product string, recipientID, courierID kernel.UUID) (*delivery.Delivery, error) {
	return delivery.NewDelivery(kernel.NewUUID(), product, recipientID, courierID)
}

// Update applies patch to any non-canceled delivery.
func (l DeliveryLifecycle) Update(d *delivery.Delivery, patch delivery.Patch) error {
	return d.Update(patch)
}

// PickUp stamps the start date with the current time.
func (l DeliveryLifecycle) PickUp(d *delivery.Delivery) error {
	return d.PickUp(l.clock.Now())
}

// Complete records the signature and stamps the end date. If the clock reads
// earlier than the start date the end date equals the start date.
func (l DeliveryLifecycle) Complete(d *delivery.Delivery, signatureID kernel.UUID) error {
	return d.Complete(signatureID, l.clock.Now())
}

// Cancel stamps the cancellation date.
func (l DeliveryLifecycle) Cancel(d *delivery.Delivery) error {
	return d.Cancel(l.clock.Now())
}

// CurrentState returns the derived status of d.
func (l DeliveryLifecycle) CurrentState(d *delivery.Delivery) (delivery.Status, error) {
	if err := d.Validate(); err != nil {
		return delivery.Unknown, err
	}
	return d.Status(), nil
}
