package commands

import (
	"context"
	"fmt"

	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/pkg/errs"
)

// UpdateMediaProcessingCommandHandler moves an asset through the
// processing pipeline on the worker's behalf.
type UpdateMediaProcessingCommandHandler struct {
	uowFactory MediaUoWFactory
}

// NewUpdateMediaProcessingCommandHandler creates a handler for process
// status updates.
func NewUpdateMediaProcessingCommandHandler(uowFactory MediaUoWFactory) UpdateMediaProcessingCommandHandler {
	return UpdateMediaProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the asset, applies the transition matching the target
// status, and persists the change in one transaction.
func (h *UpdateMediaProcessingCommandHandler) Handle(ctx context.Context, cmd UpdateMediaProcessingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MediaAssetRepository()
	aggregate, err := repo.Get(ctx, cmd.AssetID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case media.Processing:
		err = aggregate.StartProcessing()
	case media.Ready:
		err = aggregate.CompleteProcessing()
	case media.Failed:
		err = aggregate.FailProcessing()
	default:
		err = errs.NewInvalidOperationErrorWithCause("update media processing",
			fmt.Errorf("%s is not a reachable target", cmd.Target().String()))
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
