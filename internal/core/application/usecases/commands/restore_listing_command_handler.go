package commands

import (
	"context"
)

// RestoreListingCommandHandler recovers a soft-deleted listing. The read
// deliberately includes deleted rows; every other flow would never see
// the listing again.
type RestoreListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewRestoreListingCommandHandler creates a handler for listing recovery.
func NewRestoreListingCommandHandler(uowFactory ListingUoWFactory) RestoreListingCommandHandler {
	return RestoreListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the listing including deleted rows, clears the removal
// mark, and persists the change in one transaction.
func (h *RestoreListingCommandHandler) Handle(ctx context.Context, cmd RestoreListingCommand) error {
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
	aggregate, err := repo.GetIncludingDeleted(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	aggregate.Restore()

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
