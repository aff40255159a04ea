package commands

import (
	"context"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/pkg/errs"
)

// RegisterTrackCodeCommandHandler stores a newly registered code in UserAdded status.
type RegisterTrackCodeCommandHandler struct {
	uowFactory TrackCodeUoWFactory
}

// NewRegisterTrackCodeCommandHandler creates a handler for parcel registration.
func NewRegisterTrackCodeCommandHandler(uowFactory TrackCodeUoWFactory) RegisterTrackCodeCommandHandler {
	return RegisterTrackCodeCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the stored code. Registering a code that is
// already known fails with ports.ErrTrackCodeExists.
func (h *RegisterTrackCodeCommandHandler) Handle(ctx context.Context, cmd RegisterTrackCodeCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	tc, err := trackcode.NewTrackCode(cmd.Code(), cmd.OwnerID(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.UserDirectory().Exists(ctx, cmd.OwnerID())
	if err != nil {
		return 0, fmt.Errorf("failed to look up owner: %w", err)
	}
	if !exists {
		return 0, errs.NewObjectNotFoundError("user", cmd.OwnerID().String())
	}

	if err = uow.TrackCodeRepository().Add(ctx, tc); err != nil {
		return 0, fmt.Errorf("failed to register %s: %w", tc.Code(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return tc.ID(), nil
}
