package commands_test

import (
	"context"

	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
	"deliverytracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, p *problem.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) ListByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*problem.Problem, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*problem.Problem), args.Error(1)
}

func (m *MockProblemRepository) ListPageByDelivery(
	ctx context.Context, deliveryID kernel.UUID, limit, offset int,
) ([]*problem.Problem, error) {
	args := m.Called(ctx, deliveryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*problem.Problem), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockSignatureVerifier struct{ mock.Mock }

func (m *MockSignatureVerifier) Verify(ctx context.Context, signatureID kernel.UUID) error {
	args := m.Called(ctx, signatureID)
	return args.Error(0)
}
