package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// StaleDeliveriesReader reads in-transit deliveries picked up before a cutoff,
// longest in transit first.
type StaleDeliveriesReader interface {
	Handle(ctx context.Context, query queries.GetStaleDeliveriesQuery) ([]queries.DeliverySummaryResponse, error)
}

// StaleTransitJob flags deliveries that were picked up more than threshold
// ago and are still in transit.
type StaleTransitJob struct {
	reader    StaleDeliveriesReader
	schedule  string
	threshold time.Duration
	clock     kernel.Clock
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewStaleTransitJob(
	reader StaleDeliveriesReader,
	schedule string,
	threshold time.Duration,
	clock kernel.Clock,
	logger *slog.Logger,
) *StaleTransitJob {
	if clock == nil {
		clock = kernel.NewSystemClock()
	}
	return &StaleTransitJob{
		reader:    reader,
		schedule:  schedule,
		threshold: threshold,
		clock:     clock,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_transit_job"),
	}
}

// Start schedules the job.
func (j *StaleTransitJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale transit job started",
		"schedule", j.schedule,
		"threshold", j.threshold,
	)
	return nil
}

// Stop waits for a running scan to finish.
func (j *StaleTransitJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale transit job stopped")
}

// Run reports the deliveries in transit since before now minus the threshold
// and returns their ids. Rows come oldest first, so when the report is cut at
// maxReportPages the longest stuck deliveries are the ones already reported.
func (j *StaleTransitJob) Run(ctx context.Context) []kernel.UUID {
	now := j.clock.Now()
	cutoff := now.Add(-j.threshold)
	stale := make([]kernel.UUID, 0)

	for number := 1; number <= maxReportPages; number++ {
		page, err := queries.NewPage(number, queries.MaxPageSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale transit scan failed", "error", err)
			return stale
		}
		query, err := queries.NewGetStaleDeliveriesQuery(cutoff, page)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale transit scan failed", "error", err)
			return stale
		}

		rows, err := j.reader.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale transit scan failed", "error", err)
			return stale
		}

		for _, row := range rows {
			if row.Status != delivery.PickedUp || row.StartDate == nil || !row.StartDate.Before(cutoff) {
				continue
			}
			stale = append(stale, row.ID)
			j.logger.WarnContext(ctx, "Delivery in transit for too long",
				"delivery_id", row.ID.String(),
				"courier_id", row.CourierID.String(),
				"picked_up_at", *row.StartDate,
				"in_transit", now.Sub(*row.StartDate),
			)
		}

		if len(rows) < page.Size() {
			break
		}
	}

	return stale
}
