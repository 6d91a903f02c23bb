// Package queries contains read-only operations over deliveries and their
// problems. Single-delivery reads go through the repositories without a
// transaction, so they never take row locks. List views are projections
// computed with raw SQL over the same tables.
package queries
