// Package guard marks values that were built through their constructor.
//
// Commands, queries and aggregates embed a ConstructorGuard and call
// Validate before use, so a zero-value struct literal never reaches a handler
// or a repository.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. The zero value fails Validate.
//
// Example:
//
//	var ErrPickUpDeliveryCommandIsNotConstructed = errors.New("PickUpDeliveryCommand must be created via NewPickUpDeliveryCommand")
//
//	type PickUpDeliveryCommand struct {
//	    deliveryID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c PickUpDeliveryCommand) Validate() error {
//	    return c.guard.Validate(ErrPickUpDeliveryCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes Validate.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
