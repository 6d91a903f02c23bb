package queries_test

import (
	"math"
	"testing"
	"time"

	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
	"deliverytracking/internal/core/domain/services"
	"deliverytracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reportedAt = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

type queryFixture struct {
	factory      *MockUnitOfWorkFactory
	uow          *MockUnitOfWork
	deliveryRepo *MockDeliveryRepository
	problemRepo  *MockProblemRepository
}

func newQueryFixture() queryFixture {
	f := queryFixture{
		factory:      new(MockUnitOfWorkFactory),
		uow:          new(MockUnitOfWork),
		deliveryRepo: new(MockDeliveryRepository),
		problemRepo:  new(MockProblemRepository),
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("DeliveryRepository").Return(f.deliveryRepo)
	f.uow.On("ProblemRepository").Return(f.problemRepo)
	return f
}

func storedDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	start := reportedAt.Add(-time.Hour)
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), "Laptop", kernel.NewUUID(), kernel.NewUUID(), nil, &start, nil, nil, 2)
	require.NoError(t, err)
	return d
}

func registry() services.ProblemRegistry {
	return services.NewProblemRegistry(kernel.ClockFunc(func() time.Time { return reportedAt }))
}

func firstProblemPage(t *testing.T) queries.Page {
	t.Helper()
	page, err := queries.NewPage(1, queries.DefaultProblemPageSize)
	require.NoError(t, err)
	return page
}

func TestListProblemsQueryHandler_Handle(t *testing.T) {
	t.Run("should return problems oldest first", func(t *testing.T) {
		ctx := t.Context()
		f := newQueryFixture()
		d := storedDelivery(t)
		late, _ := problem.NewProblem(kernel.NewUUID(), d.ID(), "late", reportedAt.Add(time.Minute))
		early, _ := problem.NewProblem(kernel.NewUUID(), d.ID(), "early", reportedAt)
		f.deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
		f.problemRepo.On("ListPageByDelivery", ctx, d.ID(), 10, 0).Return([]*problem.Problem{late, early}, nil).Once()
		query, err := queries.NewListProblemsQuery(d.ID(), firstProblemPage(t))
		require.NoError(t, err)

		got, err := queries.NewListProblemsQueryHandler(f.factory, registry()).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "early", got[0].Description)
		assert.Equal(t, "late", got[1].Description)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should return empty list when no problems", func(t *testing.T) {
		ctx := t.Context()
		f := newQueryFixture()
		d := storedDelivery(t)
		f.deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
		f.problemRepo.On("ListPageByDelivery", ctx, d.ID(), 10, 0).Return([]*problem.Problem{}, nil).Once()
		query, _ := queries.NewListProblemsQuery(d.ID(), firstProblemPage(t))

		got, err := queries.NewListProblemsQueryHandler(f.factory, registry()).Handle(ctx, query)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("should fail for unknown delivery", func(t *testing.T) {
		ctx := t.Context()
		f := newQueryFixture()
		id := kernel.NewUUID()
		f.deliveryRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("delivery", id.String())).Once()
		query, _ := queries.NewListProblemsQuery(id, firstProblemPage(t))

		_, err := queries.NewListProblemsQueryHandler(f.factory, registry()).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.problemRepo.AssertNotCalled(t, "ListPageByDelivery", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should read the requested page ten at a time", func(t *testing.T) {
		ctx := t.Context()
		f := newQueryFixture()
		d := storedDelivery(t)
		eleventh, _ := problem.NewProblem(kernel.NewUUID(), d.ID(), "eleventh", reportedAt)
		f.deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
		f.problemRepo.On("ListPageByDelivery", ctx, d.ID(), 10, 10).Return([]*problem.Problem{eleventh}, nil).Once()
		page, err := queries.NewPage(2, queries.DefaultProblemPageSize)
		require.NoError(t, err)
		query, err := queries.NewListProblemsQuery(d.ID(), page)
		require.NoError(t, err)

		got, err := queries.NewListProblemsQueryHandler(f.factory, registry()).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "eleventh", got[0].Description)
		f.problemRepo.AssertNotCalled(t, "ListByDelivery", mock.Anything, mock.Anything)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := queries.NewListProblemsQueryHandler(new(MockUnitOfWorkFactory), registry()).
			Handle(t.Context(), queries.ListProblemsQuery{})

		require.ErrorIs(t, err, queries.ErrListProblemsQueryIsNotConstructed)
	})
}

func TestHasOpenProblemsQueryHandler_Handle(t *testing.T) {
	t.Run("should be false without problems", func(t *testing.T) {
		ctx := t.Context()
		f := newQueryFixture()
		d := storedDelivery(t)
		f.deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
		f.problemRepo.On("ListByDelivery", ctx, d.ID()).Return([]*problem.Problem{}, nil).Once()
		query, _ := queries.NewHasOpenProblemsQuery(d.ID())

		got, err := queries.NewHasOpenProblemsQueryHandler(f.factory, registry()).Handle(ctx, query)

		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("should stay true after completion", func(t *testing.T) {
		ctx := t.Context()
		f := newQueryFixture()
		d := storedDelivery(t)
		require.NoError(t, d.Complete(kernel.NewUUID(), reportedAt.Add(time.Hour)))
		p, _ := problem.NewProblem(kernel.NewUUID(), d.ID(), "box damaged", reportedAt)
		f.deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
		f.problemRepo.On("ListByDelivery", ctx, d.ID()).Return([]*problem.Problem{p}, nil).Once()
		query, _ := queries.NewHasOpenProblemsQuery(d.ID())

		got, err := queries.NewHasOpenProblemsQueryHandler(f.factory, registry()).Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestGetDeliveryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	f := newQueryFixture()
	d := storedDelivery(t)
	f.deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	query, err := queries.NewGetDeliveryQuery(d.ID())
	require.NoError(t, err)

	got, err := queries.NewGetDeliveryQueryHandler(f.factory).Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, got.ID.IsEqual(d.ID()))
	assert.Equal(t, delivery.PickedUp, got.Status)
	assert.Equal(t, 2, got.Version)
	assert.Nil(t, got.EndDate)
}

func TestQueryConstructors(t *testing.T) {
	_, err := queries.NewGetDeliveryQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewListProblemsQuery(kernel.UUID{}, firstProblemPage(t))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewListProblemsQuery(kernel.NewUUID(), queries.Page{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewHasOpenProblemsQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, queries.GetActiveDeliveriesQuery{}.Validate(), queries.ErrGetActiveDeliveriesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetDeliveriesWithProblemsQuery{}.Validate(), queries.ErrGetDeliveriesWithProblemsQueryIsNotConstructed)
}

func TestNewPage(t *testing.T) {
	t.Run("should compute offset", func(t *testing.T) {
		p, err := queries.NewPage(3, queries.DefaultPageSize)

		require.NoError(t, err)
		assert.Equal(t, 40, p.Offset())
	})

	t.Run("should reject page zero and oversized pages", func(t *testing.T) {
		_, err := queries.NewPage(0, queries.MaxPageSize+1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "page size")
	})

	t.Run("should reject a page number whose offset would overflow", func(t *testing.T) {
		for _, number := range []int{queries.MaxPageNumber + 1, math.MaxInt} {
			_, err := queries.NewPage(number, queries.MaxPageSize)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "is page")
		}
	})

	t.Run("should keep the last allowed page offset positive", func(t *testing.T) {
		p, err := queries.NewPage(queries.MaxPageNumber, queries.MaxPageSize)

		require.NoError(t, err)
		assert.Positive(t, p.Offset())
	})
}
