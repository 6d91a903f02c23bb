package delivery_test

import (
	"testing"

	"deliverytracking/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
)

func TestGuards_AgreeWithStatusTable(t *testing.T) {
	builders := map[string]func(*testing.T) *delivery.Delivery{
		"created":   newCreated,
		"picked up": newPickedUp,
		"completed": newCompleted,
		"canceled":  newCanceled,
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			d := build(t)
			s := d.Status()

			assert.Equal(t, s.ValidatePickUp() == nil, delivery.CanPickUp(d))
			assert.Equal(t, s.ValidateComplete() == nil, delivery.CanComplete(d))
			assert.Equal(t, s.ValidateCancel() == nil, delivery.CanCancel(d))
			assert.Equal(t, s.ValidateReportProblem() == nil, delivery.CanReportProblem(d))
			assert.Equal(t, s.ValidateUpdate() == nil, delivery.CanMutateFields(d))
		})
	}
}

func TestGuards_RejectNil(t *testing.T) {
	assert.False(t, delivery.CanPickUp(nil))
	assert.False(t, delivery.CanComplete(nil))
	assert.False(t, delivery.CanCancel(nil))
	assert.False(t, delivery.CanReportProblem(nil))
	assert.False(t, delivery.CanMutateFields(nil))
}

func TestValidateReportProblem(t *testing.T) {
	assert.NoError(t, delivery.ValidateReportProblem(newPickedUp(t)))
	assert.ErrorIs(t, delivery.ValidateReportProblem(newCreated(t)), delivery.ErrNotPickedUp)
	assert.ErrorIs(t, delivery.ValidateReportProblem(newCompleted(t)), delivery.ErrAlreadyCompleted)
	assert.ErrorIs(t, delivery.ValidateReportProblem(newCanceled(t)), delivery.ErrCanceled)
	assert.ErrorIs(t, delivery.ValidateReportProblem(nil), delivery.ErrDeliveryIsNotConstructed)
}
