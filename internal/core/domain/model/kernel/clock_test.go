package kernel_test

import (
	"testing"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_Now(t *testing.T) {
	t.Run("returns UTC truncated to microseconds", func(t *testing.T) {
		now := kernel.NewSystemClock().Now()

		assert.Equal(t, time.UTC, now.Location())
		assert.Equal(t, now, now.Truncate(time.Microsecond))
	})
}

func TestClockFunc_Now(t *testing.T) {
	t.Run("returns the wrapped function value", func(t *testing.T) {
		fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		clock := kernel.ClockFunc(func() time.Time { return fixed })

		assert.Equal(t, fixed, clock.Now())
	})
}
