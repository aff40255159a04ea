package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/core/ports"
)

// UpdateTrackCodesResult reports a best effort batch update.
type UpdateTrackCodesResult struct {
	Updated  int
	Failed   int
	Warnings []string
}

// UpdateTrackCodesCommandHandler applies operator updates line by line.
// A failing line is rolled back to its savepoint and reported, the rest of
// the batch still commits.
type UpdateTrackCodesCommandHandler struct {
	uowFactory TrackCodeUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewUpdateTrackCodesCommandHandler creates the handler for batch status and weight updates.
func NewUpdateTrackCodesCommandHandler(
	uowFactory TrackCodeUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) UpdateTrackCodesCommandHandler {
	return UpdateTrackCodesCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger.With("component", "update_track_codes"),
	}
}

// Handle applies every line in its own savepoint, so one bad line leaves
// the others applied. Notifications go out only after commit.
func (h *UpdateTrackCodesCommandHandler) Handle(ctx context.Context, cmd UpdateTrackCodesCommand) (UpdateTrackCodesResult, error) {
	var result UpdateTrackCodesResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TrackCodeRepository()
	now := time.Now().UTC()

	for i, update := range cmd.Updates() {
		savepoint := fmt.Sprintf("track_code_%d", i)
		if err := uow.SavePoint(ctx, savepoint); err != nil {
			return result, err
		}

		tc, err := h.apply(ctx, repo, cmd, update, now)
		if err != nil {
			if rbErr := uow.RollbackTo(ctx, savepoint); rbErr != nil {
				return result, rbErr
			}
			result.Failed++
			result.Warnings = append(result.Warnings, lineWarning(update.Code, err))
			continue
		}

		result.Updated++
		if cmd.Notify() && cmd.Status() != trackcode.Unknown {
			uow.Stage(notification.StatusChanged(tc.Owner(), tc.Code(), tc.Status()))
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return UpdateTrackCodesResult{}, err
	}

	dispatch(ctx, h.sink, h.logger, uow.Staged())
	return result, nil
}

func (h *UpdateTrackCodesCommandHandler) apply(
	ctx context.Context,
	repo ports.TrackCodeRepository,
	cmd UpdateTrackCodesCommand,
	update TrackCodeUpdate,
	now time.Time,
) (*trackcode.TrackCode, error) {
	tc, err := repo.LockByCode(ctx, update.Code)
	if err != nil {
		return nil, err
	}

	if cmd.Status() != trackcode.Unknown {
		if cmd.IsCorrection() {
			err = tc.Correct(cmd.Status(), now)
		} else {
			err = tc.Advance(cmd.Status(), now)
		}
		if err != nil {
			return nil, err
		}
	}

	if update.Weight != nil {
		if err = tc.Weigh(*update.Weight, now); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, tc); err != nil {
		return nil, err
	}
	return tc, nil
}
