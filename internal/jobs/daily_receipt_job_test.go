package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOwners struct {
	mock.Mock
}

func (m *mockOwners) Handle(ctx context.Context, query queries.GetBillableOwnersQuery) ([]kernel.UUID, error) {
	args := m.Called(ctx, query)
	owners, _ := args.Get(0).([]kernel.UUID)
	return owners, args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Handle(ctx context.Context, cmd commands.GenerateReceiptCommand) (commands.GenerateReceiptResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.GenerateReceiptResult), args.Error(1)
}

func forOwner(owner kernel.UUID) any {
	return mock.MatchedBy(func(cmd commands.GenerateReceiptCommand) bool {
		return cmd.OwnerID().IsEqual(owner)
	})
}

func newJob(owners *mockOwners, generator *mockGenerator) *DailyReceiptJob {
	job := NewDailyReceiptJob(owners, generator, "", slog.New(slog.DiscardHandler))
	job.now = func() time.Time { return time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC) }
	return job
}

func TestRunOnceBillsEveryOwner(t *testing.T) {
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	owners := &mockOwners{}
	owners.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetBillableOwnersQuery) bool {
		return q.AsOf().Equal(time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC))
	})).Return([]kernel.UUID{a, b, c}, nil)

	generator := &mockGenerator{}
	generator.On("Handle", mock.Anything, forOwner(a)).Return(commands.GenerateReceiptResult{ReceiptID: 1, ItemCount: 2}, nil)
	generator.On("Handle", mock.Anything, forOwner(b)).
		Return(commands.GenerateReceiptResult{}, fmt.Errorf("customer %s: %w", b, commands.ErrNoEligibleParcels))
	generator.On("Handle", mock.Anything, forOwner(c)).Return(commands.GenerateReceiptResult{}, errors.New("deadlock detected"))

	run, err := newJob(owners, generator).RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ReceiptRun{Generated: 1, Skipped: 1, Failed: 1}, run)
	generator.AssertNumberOfCalls(t, "Handle", 3)
}

func TestRunOnceOwnerListFailure(t *testing.T) {
	owners := &mockOwners{}
	owners.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	generator := &mockGenerator{}

	_, err := newJob(owners, generator).RunOnce(context.Background())

	require.Error(t, err)
	generator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRunOnceStopsWhenCanceled(t *testing.T) {
	owners := &mockOwners{}
	owners.On("Handle", mock.Anything, mock.Anything).Return([]kernel.UUID{kernel.NewUUID()}, nil)
	generator := &mockGenerator{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newJob(owners, generator).RunOnce(ctx)

	require.ErrorIs(t, err, context.Canceled)
	generator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	job := NewDailyReceiptJob(&mockOwners{}, &mockGenerator{}, "every night", slog.New(slog.DiscardHandler))

	require.Error(t, job.Start())
}

func TestJobManagerStartStop(t *testing.T) {
	job := NewDailyReceiptJob(&mockOwners{}, &mockGenerator{}, "0 0 2 * * *", slog.New(slog.DiscardHandler))
	manager := NewJobManager(job)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
