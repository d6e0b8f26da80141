package commands

import (
	"context"
	"errors"

	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/core/ports"
	"shootdesk/internal/pkg/errs"
)

// ProcessMediaAssetJobType names the background job that produces
// variants for a freshly registered asset.
const ProcessMediaAssetJobType = "process_media_asset"

// RegisterMediaAssetCommandHandler registers an uploaded file. A checksum
// already known to the studio means the same bytes were uploaded before,
// so registration fails with ConflictError instead of storing a twin.
// Successful registration enqueues a processing job; dispatch is
// fire-and-forget, so a queue hiccup does not lose the asset.
type RegisterMediaAssetCommandHandler struct {
	uowFactory MediaUoWFactory
	dispatcher ports.JobDispatcher
}

// NewRegisterMediaAssetCommandHandler creates a handler for asset
// registration.
func NewRegisterMediaAssetCommandHandler(
	uowFactory MediaUoWFactory,
	dispatcher ports.JobDispatcher,
) RegisterMediaAssetCommandHandler {
	return RegisterMediaAssetCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle deduplicates by checksum, persists the new asset, and enqueues
// the processing job after the transaction commits.
func (h *RegisterMediaAssetCommandHandler) Handle(ctx context.Context, cmd RegisterMediaAssetCommand) error {
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

	if cmd.ChecksumSha256() != "" {
		existing, err := repo.GetByChecksum(ctx, cmd.OwnerStudioID(), cmd.ChecksumSha256())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if existing != nil {
			return errs.NewConflictError("checksumSha256", cmd.ChecksumSha256())
		}
	}

	aggregate, err := media.NewMediaAsset(
		cmd.AssetID(), cmd.OwnerStudioID(),
		cmd.Provider(), cmd.ProviderAssetID(),
		cmd.ResourceType(), cmd.ChecksumSha256(), cmd.SizeBytes(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.dispatcher.Enqueue(ctx, ports.Job{
		Type: ProcessMediaAssetJobType,
		Args: map[string]string{"assetId": cmd.AssetID().String()},
	})
}
