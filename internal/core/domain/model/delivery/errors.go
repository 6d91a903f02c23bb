package delivery

import "errors"

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not built by
	// NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrAlreadyCanceled rejects pick-up, completion and a repeated cancellation.
	ErrAlreadyCanceled = errors.New("delivery is already canceled")

	// ErrAlreadyCompleted rejects any transition out of the Completed state.
	ErrAlreadyCompleted = errors.New("delivery is already completed")

	// ErrAlreadyPickedUp rejects a second pick-up.
	ErrAlreadyPickedUp = errors.New("delivery is already picked up")

	// ErrNotPickedUp rejects completion and problem reports before pick-up.
	ErrNotPickedUp = errors.New("delivery has not been picked up")

	// ErrCanceled rejects field updates and problem reports on a canceled delivery.
	ErrCanceled = errors.New("delivery is canceled")
)
