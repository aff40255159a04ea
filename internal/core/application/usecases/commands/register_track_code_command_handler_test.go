package commands_test

import (
	"errors"
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterTrackCodeCommand(t *testing.T) {
	t.Run("should trim code", func(t *testing.T) {
		cmd, err := commands.NewRegisterTrackCodeCommand(kernel.NewUUID(), "  YT1 ", " boots ")

		require.NoError(t, err)
		assert.Equal(t, "YT1", cmd.Code())
		assert.Equal(t, "boots", cmd.Description())
	})

	t.Run("should require owner and code", func(t *testing.T) {
		_, err := commands.NewRegisterTrackCodeCommand(kernel.UUID{}, " ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "owner")
		assert.Contains(t, err.Error(), "code")
	})
}

func TestRegisterTrackCodeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	cmd, err := commands.NewRegisterTrackCodeCommand(owner, "YT1", "")
	require.NoError(t, err)

	uow := newMockUnitOfWork()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.users.On("Exists", ctx, owner).Return(true, nil).Once(),
		uow.trackCodes.On("Add", ctx, mock.MatchedBy(func(tc *trackcode.TrackCode) bool {
			return tc.Code() == "YT1" && tc.Status() == trackcode.UserAdded
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*trackcode.TrackCode).AssignID(41)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRegisterTrackCodeCommandHandler(trackCodeUoWFactory{uow})
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	uow.assertAll(t)
}

func TestRegisterTrackCodeCommandHandler_Handle_UnknownOwner(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	cmd, err := commands.NewRegisterTrackCodeCommand(owner, "YT1", "")
	require.NoError(t, err)

	uow := newMockUnitOfWork()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("Exists", ctx, owner).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRegisterTrackCodeCommandHandler(trackCodeUoWFactory{uow})
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertAll(t)
}

func TestRegisterTrackCodeCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	cmd, err := commands.NewRegisterTrackCodeCommand(owner, "YT1", "")
	require.NoError(t, err)

	uow := newMockUnitOfWork()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.users.On("Exists", ctx, owner).Return(true, nil).Once()
	uow.trackCodes.On("Add", ctx, mock.Anything).Return(ports.ErrTrackCodeExists).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRegisterTrackCodeCommandHandler(trackCodeUoWFactory{uow})
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrTrackCodeExists)
	uow.assertAll(t)
}

func TestRegisterTrackCodeCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterTrackCodeCommand(kernel.NewUUID(), "YT1", "")
	require.NoError(t, err)

	uow := newMockUnitOfWork()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewRegisterTrackCodeCommandHandler(trackCodeUoWFactory{uow})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.assertAll(t)
}

func TestRegisterTrackCodeCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewRegisterTrackCodeCommandHandler(trackCodeUoWFactory{newMockUnitOfWork()})

	_, err := h.Handle(t.Context(), commands.RegisterTrackCodeCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterTrackCodeCommandIsNotConstructed)
}
