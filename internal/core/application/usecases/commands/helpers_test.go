package commands_test

import (
	"testing"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func testLifecycle() services.DeliveryLifecycle {
	return services.NewDeliveryLifecycle(kernel.ClockFunc(func() time.Time { return now }))
}

func testRegistry() services.ProblemRegistry {
	return services.NewProblemRegistry(kernel.ClockFunc(func() time.Time { return now }))
}

func createdDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), "Laptop", kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, nil, 1)
	require.NoError(t, err)
	return d
}

func pickedUpDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	start := now.Add(-time.Hour)
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), "Laptop", kernel.NewUUID(), kernel.NewUUID(), nil, &start, nil, nil, 2)
	require.NoError(t, err)
	return d
}

func canceledDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	canceled := now.Add(-time.Minute)
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), "Laptop", kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, &canceled, 2)
	require.NoError(t, err)
	return d
}
