package jobs

import (
	"context"
	"log/slog"

	"deliverytracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// maxReportPages bounds a single run so a backlog cannot stall the scheduler.
const maxReportPages = 50

// DeliveriesWithProblemsReader reads the deliveries-with-problems projection.
type DeliveriesWithProblemsReader interface {
	Handle(ctx context.Context, query queries.GetDeliveriesWithProblemsQuery) ([]queries.DeliverySummaryResponse, error)
}

// ProblemDeliveriesReportJob periodically logs every in-transit delivery
// that has problems reported against it.
type ProblemDeliveriesReportJob struct {
	reader   DeliveriesWithProblemsReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewProblemDeliveriesReportJob(
	reader DeliveriesWithProblemsReader,
	schedule string,
	logger *slog.Logger,
) *ProblemDeliveriesReportJob {
	return &ProblemDeliveriesReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "problem_deliveries_report_job"),
	}
}

// Start schedules the job.
func (j *ProblemDeliveriesReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Problem deliveries report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *ProblemDeliveriesReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Problem deliveries report job stopped")
}

// Run reads the projection page by page and logs one line per delivery.
// It returns the number of deliveries reported.
func (j *ProblemDeliveriesReportJob) Run(ctx context.Context) int {
	reported := 0

	for number := 1; number <= maxReportPages; number++ {
		page, err := queries.NewPage(number, queries.MaxPageSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Problem deliveries report failed", "error", err)
			return reported
		}

		rows, err := j.reader.Handle(ctx, queries.NewGetDeliveriesWithProblemsQuery(page))
		if err != nil {
			j.logger.ErrorContext(ctx, "Problem deliveries report failed", "error", err)
			return reported
		}

		for _, row := range rows {
			j.logger.WarnContext(ctx, "Delivery in transit has problems",
				"delivery_id", row.ID.String(),
				"courier_id", row.CourierID.String(),
				"problems", row.ProblemCount,
				"picked_up_at", row.StartDate,
			)
		}
		reported += len(rows)

		if len(rows) < page.Size() {
			break
		}
	}

	if reported > 0 {
		j.logger.InfoContext(ctx, "Problem deliveries report finished", "deliveries", reported)
	}
	return reported
}
