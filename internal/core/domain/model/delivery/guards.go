package delivery

// The predicates below are the consistency guard of the lifecycle. They read
// only the stored timestamps, never the clock, and accept any snapshot
// including nil (which is never eligible).

// CanPickUp reports whether d has neither been picked up nor canceled.
func CanPickUp(d *Delivery) bool {
	return d != nil && d.startDate == nil && d.endDate == nil && d.canceledAt == nil
}

// CanComplete reports whether d is in transit.
func CanComplete(d *Delivery) bool {
	return d != nil && d.startDate != nil && d.endDate == nil && d.canceledAt == nil
}

// CanCancel reports whether d is neither canceled nor completed.
func CanCancel(d *Delivery) bool {
	return d != nil && d.canceledAt == nil && d.endDate == nil
}

// CanReportProblem reports whether d is in transit. Problems are only
// meaningful while the parcel is with the courier.
func CanReportProblem(d *Delivery) bool {
	return d != nil && d.startDate != nil && d.endDate == nil && d.canceledAt == nil
}

// CanMutateFields reports whether d still accepts field updates.
func CanMutateFields(d *Delivery) bool {
	return d != nil && d.canceledAt == nil
}

// ValidateReportProblem returns nil when a problem may be reported against d,
// or an *errs.InvalidStateError carrying ErrNotPickedUp, ErrAlreadyCompleted
// or ErrCanceled.
func ValidateReportProblem(d *Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if CanReportProblem(d) {
		return nil
	}
	return rejection(d.Status().ValidateReportProblem(), "report problem", d.Status())
}
