package commands

import (
	"context"
)

// AttachListingMediaCommandHandler attaches a media reference to a
// listing, optionally promoting it to cover.
type AttachListingMediaCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewAttachListingMediaCommandHandler creates a handler for media
// attachment.
func NewAttachListingMediaCommandHandler(uowFactory ListingUoWFactory) AttachListingMediaCommandHandler {
	return AttachListingMediaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the listing, attaches the reference (and the cover flag
// when requested), and persists the change in one transaction.
func (h *AttachListingMediaCommandHandler) Handle(ctx context.Context, cmd AttachListingMediaCommand) error {
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

	repo := uow.ListingRepository()
	aggregate, err := repo.Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	ref, err := aggregate.AttachMedia(cmd.RefID(), cmd.MediaAssetID(), cmd.Role(), cmd.SortOrder())
	if err != nil {
		return err
	}

	if cmd.AsCover() {
		if err = aggregate.SetCover(ref.ID()); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
