package commands

import (
	"context"
)

// AddMediaVariantCommandHandler records a rendition on an asset. The
// aggregate rejects duplicate names and assets that already failed.
type AddMediaVariantCommandHandler struct {
	uowFactory MediaUoWFactory
}

// NewAddMediaVariantCommandHandler creates a handler for variant addition.
func NewAddMediaVariantCommandHandler(uowFactory MediaUoWFactory) AddMediaVariantCommandHandler {
	return AddMediaVariantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the asset, adds the variant, and persists the change in
// one transaction.
func (h *AddMediaVariantCommandHandler) Handle(ctx context.Context, cmd AddMediaVariantCommand) error {
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

	_, err = aggregate.AddVariant(
		cmd.VariantID(), cmd.Name(), cmd.URL(),
		cmd.Width(), cmd.Height(), cmd.Bitrate(), cmd.SizeBytes(),
	)
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
