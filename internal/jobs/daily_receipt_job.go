package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultReceiptSchedule runs the billing pass every night at 02:00.
const DefaultReceiptSchedule = "0 0 2 * * *"

type BillableOwnersReader interface {
	Handle(ctx context.Context, query queries.GetBillableOwnersQuery) ([]kernel.UUID, error)
}

type ReceiptGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateReceiptCommand) (commands.GenerateReceiptResult, error)
}

// DailyReceiptJob bills every customer with eligible parcels on a schedule.
// Each customer gets its own receipt transaction, one failure does not stop
// the pass.
type DailyReceiptJob struct {
	owners    BillableOwnersReader
	generator ReceiptGenerator
	schedule  string
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDailyReceiptJob creates the job. schedule is a cron expression with a
// leading seconds field; empty selects DefaultReceiptSchedule.
func NewDailyReceiptJob(
	owners BillableOwnersReader,
	generator ReceiptGenerator,
	schedule string,
	logger *slog.Logger,
) *DailyReceiptJob {
	if schedule == "" {
		schedule = DefaultReceiptSchedule
	}
	return &DailyReceiptJob{
		owners:    owners,
		generator: generator,
		schedule:  schedule,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "daily_receipt_job"),
	}
}

// ReceiptRun summarizes one billing pass.
type ReceiptRun struct {
	Generated int
	Skipped   int
	Failed    int
}

// RunOnce bills every owner that has parcels eligible at the moment of the call.
func (j *DailyReceiptJob) RunOnce(ctx context.Context) (ReceiptRun, error) {
	var run ReceiptRun

	query, err := queries.NewGetBillableOwnersQuery(j.now())
	if err != nil {
		return run, err
	}

	owners, err := j.owners.Handle(ctx, query)
	if err != nil {
		return run, fmt.Errorf("failed to list billable owners: %w", err)
	}

	for _, owner := range owners {
		if err := ctx.Err(); err != nil {
			return run, err
		}

		cmd, err := commands.NewGenerateReceiptCommand(owner, "")
		if err != nil {
			return run, err
		}

		result, err := j.generator.Handle(ctx, cmd)
		switch {
		case err == nil:
			run.Generated++
			j.logger.InfoContext(ctx, "receipt generated",
				"owner", owner.String(), "receipt_id", result.ReceiptID, "items", result.ItemCount)
		case errors.Is(err, commands.ErrNoEligibleParcels), errors.Is(err, commands.ErrTrackCodeAlreadyBilled):
			// Billed concurrently since the owner list was read.
			run.Skipped++
		default:
			run.Failed++
			j.logger.ErrorContext(ctx, "receipt generation failed", "owner", owner.String(), "error", err)
		}
	}

	return run, nil
}

// Start schedules the job.
func (j *DailyReceiptJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		run, err := j.RunOnce(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily receipt job failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Daily receipt job finished",
			"generated", run.Generated, "skipped", run.Skipped, "failed", run.Failed)
	})
	if err != nil {
		return fmt.Errorf("invalid receipt schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily receipt job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the job and waits for a running pass to finish.
func (j *DailyReceiptJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily receipt job stopped")
}
