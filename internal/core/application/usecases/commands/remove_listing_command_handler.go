package commands

import (
	"context"
)

// RemoveListingCommandHandler soft-deletes a listing. Soft-deleting an
// already deleted listing is a no-op, matching the aggregate's idempotent
// removal semantics.
type RemoveListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewRemoveListingCommandHandler creates a handler for listing removal.
func NewRemoveListingCommandHandler(uowFactory ListingUoWFactory) RemoveListingCommandHandler {
	return RemoveListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the listing, marks it deleted, and persists the change in
// one transaction.
func (h *RemoveListingCommandHandler) Handle(ctx context.Context, cmd RemoveListingCommand) error {
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

	aggregate.SoftDelete(cmd.Now())

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
