package kernel

import "time"

// Clock supplies the current time to the lifecycle services. Timestamps are
// never taken from callers, so every transition stamp comes from one Clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC, truncated to microseconds so a
// stamp survives a round trip through PostgreSQL timestamptz unchanged.
type SystemClock struct{}

// NewSystemClock returns the production clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}
