// Package problem provides the Problem entity: an issue reported against a
// delivery while it is in transit.
//
// Problems are append-only. They carry no resolution state, so a delivery
// "has open problems" exactly when at least one problem exists for it.
// Listing order is report time ascending, ties broken by id.
package problem
