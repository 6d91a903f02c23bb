// Package kernel holds the shared value objects of the delivery tracking domain.
//
// The package includes:
//   - UUID: identifier value object used for deliveries, problems and the
//     recipient, courier and signature references they carry
//   - Clock: the single source of "now" for lifecycle timestamps
//
// Both are immutable and safe for concurrent use.
package kernel
