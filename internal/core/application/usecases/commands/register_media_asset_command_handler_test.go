package commands_test

import (
	"errors"
	"testing"

	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/core/ports"
	"shootdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const registeredChecksum = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func validRegisterMediaAssetCommand(t *testing.T) commands.RegisterMediaAssetCommand {
	t.Helper()
	cmd, err := commands.NewRegisterMediaAssetCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"mux", "asset-7f3k",
		media.Video, registeredChecksum, 52_428_800,
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterMediaAssetCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMediaAssetCommand(t)

	repo := new(MockMediaAssetRepository)
	uow := new(MockMediaUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MediaAssetRepository").Return(repo).Once(),
		repo.On("GetByChecksum", mock.Anything, cmd.OwnerStudioID(), registeredChecksum).
			Return(nil, errs.NewObjectNotFoundError("checksumSha256", registeredChecksum)).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*media.MediaAsset")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	dispatcher := new(MockJobDispatcher)
	dispatcher.On("Enqueue", ctx, ports.Job{
		Type: commands.ProcessMediaAssetJobType,
		Args: map[string]string{"assetId": cmd.AssetID().String()},
	}).Return(nil).Once()

	factory := new(MockMediaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMediaAssetCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestRegisterMediaAssetCommandHandler_Handle_ChecksumConflict(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMediaAssetCommand(t)

	existing, err := media.NewMediaAsset(
		kernel.NewUUID(), cmd.OwnerStudioID(),
		"mux", "asset-earlier",
		media.Video, registeredChecksum, 52_428_800,
	)
	require.NoError(t, err)

	repo := new(MockMediaAssetRepository)
	uow := new(MockMediaUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MediaAssetRepository").Return(repo).Once(),
		repo.On("GetByChecksum", mock.Anything, cmd.OwnerStudioID(), registeredChecksum).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	dispatcher := new(MockJobDispatcher)
	factory := new(MockMediaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMediaAssetCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	dispatcher.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterMediaAssetCommandHandler_Handle_ChecksumLookupError(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMediaAssetCommand(t)

	repo := new(MockMediaAssetRepository)
	uow := new(MockMediaUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MediaAssetRepository").Return(repo).Once(),
		repo.On("GetByChecksum", mock.Anything, cmd.OwnerStudioID(), registeredChecksum).
			Return(nil, errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMediaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMediaAssetCommandHandler(factory, new(MockJobDispatcher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterMediaAssetCommandHandler_Handle_EnqueueErrorAfterCommit(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMediaAssetCommand(t)

	repo := new(MockMediaAssetRepository)
	uow := new(MockMediaUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MediaAssetRepository").Return(repo).Once(),
		repo.On("GetByChecksum", mock.Anything, cmd.OwnerStudioID(), registeredChecksum).
			Return(nil, errs.NewObjectNotFoundError("checksumSha256", registeredChecksum)).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*media.MediaAsset")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	dispatcher := new(MockJobDispatcher)
	dispatcher.On("Enqueue", ctx, mock.AnythingOfType("ports.Job")).
		Return(errors.New("queue unavailable")).Once()

	factory := new(MockMediaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMediaAssetCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	// the asset is committed either way; only the job dispatch failed
	uow.AssertCalled(t, "Commit", ctx)
	dispatcher.AssertExpectations(t)
}
