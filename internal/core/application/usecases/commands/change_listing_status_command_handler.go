package commands

import (
	"context"
	"fmt"

	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/pkg/errs"
)

// ChangeListingStatusCommandHandler moves a listing to the target market
// state. The aggregate enforces which moves are legal from where.
type ChangeListingStatusCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewChangeListingStatusCommandHandler creates a handler for listing
// status changes.
func NewChangeListingStatusCommandHandler(uowFactory ListingUoWFactory) ChangeListingStatusCommandHandler {
	return ChangeListingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the listing, applies the transition matching the target
// status, and persists the change in one transaction.
func (h *ChangeListingStatusCommandHandler) Handle(ctx context.Context, cmd ChangeListingStatusCommand) error {
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

	switch cmd.Target() {
	case listing.Active:
		err = aggregate.Activate()
	case listing.Pending:
		err = aggregate.MarkPending()
	case listing.Sold:
		err = aggregate.MarkSold()
	case listing.Rented:
		err = aggregate.MarkRented()
	case listing.Archived:
		err = aggregate.Archive()
	default:
		err = errs.NewInvalidOperationErrorWithCause("change listing status",
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
