package commands_test

import (
	"testing"

	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/problem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportProblemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := pickedUpDelivery(t)
	cmd, err := commands.NewReportProblemCommand(d.ID(), "box damaged")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	problemRepo := new(MockProblemRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("ProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Add", ctx, mock.MatchedBy(func(p *problem.Problem) bool {
			return p.DeliveryID().IsEqual(d.ID()) && p.Description() == "box damaged"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	p, err := commands.NewReportProblemCommandHandler(factory, testRegistry()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, now, p.ReportedAt())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	problemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReportProblemCommandHandler_Handle_Ineligible(t *testing.T) {
	cases := []struct {
		name  string
		build func(*testing.T) *delivery.Delivery
		want  error
	}{
		{"created", createdDelivery, delivery.ErrNotPickedUp},
		{"canceled", canceledDelivery, delivery.ErrCanceled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			d := tc.build(t)
			cmd, _ := commands.NewReportProblemCommand(d.ID(), "box damaged")

			deliveryRepo := new(MockDeliveryRepository)
			uow := new(MockUoW)
			factory := new(MockUoWFactory)
			mock.InOrder(
				factory.On("Create").Return(uow).Once(),
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
				deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			p, err := commands.NewReportProblemCommandHandler(factory, testRegistry()).Handle(ctx, cmd)

			assert.Nil(t, p)
			require.ErrorIs(t, err, tc.want)
			uow.AssertNotCalled(t, "ProblemRepository")
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}
