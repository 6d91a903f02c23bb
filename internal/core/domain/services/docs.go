// Package services provides the domain services that drive the delivery
// lifecycle and problem tracking. They own the clock: every transition
// timestamp is taken from the injected kernel.Clock, never from the caller.
//
// The package includes:
//   - DeliveryLifecycle: creation, field updates and the pick-up, complete and
//     cancel transitions of a delivery
//   - ProblemRegistry: reporting problems against in-transit deliveries and
//     answering whether a delivery has open problems
//
// Services are stateless apart from the clock and safe for concurrent use.
// Atomicity of load, decide and persist is the caller's concern (see the
// commands package and its unit of work).
package services
