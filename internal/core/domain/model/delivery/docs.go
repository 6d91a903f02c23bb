// Package delivery provides the Delivery aggregate and its lifecycle rules.
//
// The package includes:
//   - Delivery: the aggregate root holding product, recipient and courier
//     references and the timestamps that define its lifecycle
//   - Status: the lifecycle state, always derived from the timestamps
//   - Can* predicates: the consistency guard evaluated before every transition
//
// Lifecycle:
//
//	Created ──> PickedUp ──> Completed
//	   │           │
//	   └───────────┴──> Canceled
//
// Key business rules:
//   - An end date implies a start date that precedes or equals it
//   - A completed delivery can never be canceled
//   - Status is never stored, so it cannot disagree with the timestamps
//   - A canceled delivery rejects every further change
//
// Every rejected transition returns an *errs.InvalidStateError whose cause is
// one of the sentinels below, so callers can match either errs.ErrInvalidState
// or the precise reason with errors.Is.
package delivery
