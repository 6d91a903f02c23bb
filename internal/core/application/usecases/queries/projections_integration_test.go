package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "deliverytracking/internal/adapters/out/postgres"
	"deliverytracking/internal/adapters/out/postgres/pgtest"
	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
	"deliverytracking/internal/core/domain/services"
	"deliverytracking/internal/core/ports"
	"deliverytracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ProjectionsIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
	t0      time.Time
}

func (s *ProjectionsIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.pg = pg
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB, nil)
	s.t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
}

func (s *ProjectionsIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate())
}

func (s *ProjectionsIntegrationTestSuite) TearDownSuite() {
	s.Require().NoError(s.pg.Terminate(context.Background()))
}

// seed stores a delivery and applies change before saving it again.
func (s *ProjectionsIntegrationTestSuite) seed(product string, change func(*delivery.Delivery)) *delivery.Delivery {
	ctx := context.Background()
	repo := s.factory.Create().DeliveryRepository()

	d, err := delivery.NewDelivery(kernel.NewUUID(), product, kernel.NewUUID(), kernel.NewUUID())
	s.Require().NoError(err)
	s.Require().NoError(repo.Add(ctx, d))

	if change != nil {
		change(d)
		s.Require().NoError(repo.Update(ctx, d))
	}
	return d
}

func (s *ProjectionsIntegrationTestSuite) report(d *delivery.Delivery, description string, at time.Time) {
	p, err := problem.NewProblem(kernel.NewUUID(), d.ID(), description, at)
	s.Require().NoError(err)
	s.Require().NoError(s.factory.Create().ProblemRepository().Add(context.Background(), p))
}

func (s *ProjectionsIntegrationTestSuite) pickedUpAt(at time.Time) func(*delivery.Delivery) {
	return func(d *delivery.Delivery) {
		s.Require().NoError(d.PickUp(at))
	}
}

func (s *ProjectionsIntegrationTestSuite) firstPage() queries.Page {
	page, err := queries.NewPage(1, queries.DefaultPageSize)
	s.Require().NoError(err)
	return page
}

func (s *ProjectionsIntegrationTestSuite) TestGetActiveDeliveries_ExcludesCanceledNewestFirst() {
	ctx := context.Background()
	older := s.seed("Books", nil)
	newer := s.seed("Chair", s.pickedUpAt(s.t0))
	s.seed("Lamp", func(d *delivery.Delivery) {
		s.Require().NoError(d.Cancel(s.t0))
	})
	s.report(newer, "scratched", s.t0.Add(time.Minute))

	rows, err := queries.NewGetActiveDeliveriesQueryHandler(s.pg.DB).
		Handle(ctx, queries.NewGetActiveDeliveriesQuery(s.firstPage()))

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(newer.ID(), rows[0].ID)
	s.Equal(delivery.PickedUp, rows[0].Status)
	s.Equal(1, rows[0].ProblemCount)
	s.Equal(older.ID(), rows[1].ID)
	s.Equal(delivery.Created, rows[1].Status)
	s.Zero(rows[1].ProblemCount)
}

func (s *ProjectionsIntegrationTestSuite) TestGetActiveDeliveries_Paginates() {
	ctx := context.Background()
	for range 3 {
		s.seed("Box", nil)
	}
	page, err := queries.NewPage(2, 2)
	s.Require().NoError(err)

	rows, err := queries.NewGetActiveDeliveriesQueryHandler(s.pg.DB).
		Handle(ctx, queries.NewGetActiveDeliveriesQuery(page))

	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *ProjectionsIntegrationTestSuite) TestGetStaleDeliveries_OldestInTransitFirst() {
	ctx := context.Background()
	cutoff := s.t0.Add(4 * time.Hour)
	oldest := s.seed("Desk", s.pickedUpAt(s.t0))
	older := s.seed("Sofa", s.pickedUpAt(s.t0.Add(time.Hour)))
	s.seed("Rug", s.pickedUpAt(cutoff.Add(time.Minute)))
	s.seed("Vase", func(d *delivery.Delivery) {
		s.Require().NoError(d.PickUp(s.t0.Add(-time.Hour)))
		s.Require().NoError(d.Complete(kernel.NewUUID(), s.t0))
	})
	s.seed("Lamp", func(d *delivery.Delivery) {
		s.Require().NoError(d.PickUp(s.t0.Add(-time.Hour)))
		s.Require().NoError(d.Cancel(s.t0))
	})
	for range 5 {
		s.seed("Box", nil)
	}
	s.report(older, "late", cutoff)
	handler := queries.NewGetStaleDeliveriesQueryHandler(s.pg.DB)

	page, err := queries.NewPage(1, 1)
	s.Require().NoError(err)
	query, err := queries.NewGetStaleDeliveriesQuery(cutoff, page)
	s.Require().NoError(err)
	rows, err := handler.Handle(ctx, query)

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(oldest.ID(), rows[0].ID)
	s.Equal(delivery.PickedUp, rows[0].Status)

	query, err = queries.NewGetStaleDeliveriesQuery(cutoff, s.firstPage())
	s.Require().NoError(err)
	rows, err = handler.Handle(ctx, query)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(oldest.ID(), rows[0].ID)
	s.Equal(older.ID(), rows[1].ID)
	s.Equal(1, rows[1].ProblemCount)
}

func (s *ProjectionsIntegrationTestSuite) TestGetDeliveriesWithProblems_OnlyInTransit() {
	ctx := context.Background()
	inTransit := s.seed("Desk", s.pickedUpAt(s.t0.Add(time.Hour)))
	earlierInTransit := s.seed("Sofa", s.pickedUpAt(s.t0))
	s.seed("Rug", s.pickedUpAt(s.t0))
	completed := s.seed("Vase", s.pickedUpAt(s.t0))

	s.report(inTransit, "late", s.t0.Add(2*time.Hour))
	s.report(inTransit, "very late", s.t0.Add(3*time.Hour))
	s.report(earlierInTransit, "damaged", s.t0.Add(time.Hour))
	s.report(completed, "dent", s.t0.Add(time.Hour))

	repo := s.factory.Create().DeliveryRepository()
	s.Require().NoError(completed.Complete(kernel.NewUUID(), s.t0.Add(4*time.Hour)))
	s.Require().NoError(repo.Update(ctx, completed))

	rows, err := queries.NewGetDeliveriesWithProblemsQueryHandler(s.pg.DB).
		Handle(ctx, queries.NewGetDeliveriesWithProblemsQuery(s.firstPage()))

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(earlierInTransit.ID(), rows[0].ID)
	s.Equal(1, rows[0].ProblemCount)
	s.Equal(inTransit.ID(), rows[1].ID)
	s.Equal(2, rows[1].ProblemCount)
	s.Require().NotNil(rows[1].StartDate)
	s.True(s.t0.Add(time.Hour).Equal(*rows[1].StartDate))
}

func (s *ProjectionsIntegrationTestSuite) TestListProblems_AgainstStorage() {
	ctx := context.Background()
	registry := services.NewProblemRegistry(nil)
	handler := queries.NewListProblemsQueryHandler(s.factory, registry)
	d := s.seed("Piano", s.pickedUpAt(s.t0))

	query, err := queries.NewListProblemsQuery(d.ID(), s.problemPage(1))
	s.Require().NoError(err)

	problems, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Empty(problems)

	s.report(d, "second", s.t0.Add(2*time.Minute))
	s.report(d, "first", s.t0.Add(time.Minute))

	problems, err = handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(problems, 2)
	s.Equal("first", problems[0].Description)
	s.Equal("second", problems[1].Description)

	unknown, err := queries.NewListProblemsQuery(kernel.NewUUID(), s.problemPage(1))
	s.Require().NoError(err)
	_, err = handler.Handle(ctx, unknown)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ProjectionsIntegrationTestSuite) TestListProblems_PagesTenAtATime() {
	ctx := context.Background()
	handler := queries.NewListProblemsQueryHandler(s.factory, services.NewProblemRegistry(nil))
	d := s.seed("Drum kit", s.pickedUpAt(s.t0))
	for i := range 12 {
		s.report(d, fmt.Sprintf("problem %02d", i+1), s.t0.Add(time.Duration(i+1)*time.Minute))
	}

	first, err := queries.NewListProblemsQuery(d.ID(), s.problemPage(1))
	s.Require().NoError(err)
	problems, err := handler.Handle(ctx, first)
	s.Require().NoError(err)
	s.Require().Len(problems, queries.DefaultProblemPageSize)
	s.Equal("problem 01", problems[0].Description)
	s.Equal("problem 10", problems[9].Description)

	second, err := queries.NewListProblemsQuery(d.ID(), s.problemPage(2))
	s.Require().NoError(err)
	problems, err = handler.Handle(ctx, second)
	s.Require().NoError(err)
	s.Require().Len(problems, 2)
	s.Equal("problem 11", problems[0].Description)
	s.Equal("problem 12", problems[1].Description)

	beyond, err := queries.NewListProblemsQuery(d.ID(), s.problemPage(3))
	s.Require().NoError(err)
	problems, err = handler.Handle(ctx, beyond)
	s.Require().NoError(err)
	s.NotNil(problems)
	s.Empty(problems)
}

func (s *ProjectionsIntegrationTestSuite) problemPage(number int) queries.Page {
	page, err := queries.NewPage(number, queries.DefaultProblemPageSize)
	s.Require().NoError(err)
	return page
}

func (s *ProjectionsIntegrationTestSuite) TestGetDelivery_ReturnsDerivedStatus() {
	d := s.seed("Guitar", s.pickedUpAt(s.t0))
	query, err := queries.NewGetDeliveryQuery(d.ID())
	s.Require().NoError(err)

	res, err := queries.NewGetDeliveryQueryHandler(s.factory).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(delivery.PickedUp, res.Status)
	s.Equal("Guitar", res.Product)
	s.Equal(2, res.Version)
}

func TestProjectionsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectionsIntegrationTestSuite))
}
