package commands

import (
	"context"
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/pkg/errs"
)

// CreateListingCommandHandler opens a draft listing. The slug derived
// from the title is the natural key: a second listing normalizing to the
// same slug within the agency fails with ConflictError.
type CreateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewCreateListingCommandHandler creates a handler for listing creation.
func NewCreateListingCommandHandler(uowFactory ListingUoWFactory) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks slug uniqueness, creates the listing, and persists it in
// one transaction.
func (h *CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	slug, err := kernel.SlugFrom(cmd.Title())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ListingRepository()

	existing, err := repo.GetBySlug(ctx, cmd.OwnerAgencyID(), slug)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewConflictError("slug", slug.String())
	}

	aggregate, err := listing.NewListing(
		cmd.ListingID(), cmd.OwnerAgencyID(),
		cmd.Title(), cmd.Description(), cmd.PriceCents(),
		cmd.ListingType(), cmd.PropertyType(), cmd.Address(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
