package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/pkg/guard"
)

var ErrChangeListingStatusCommandIsNotConstructed = errors.New(
	"ChangeListingStatusCommand must be created via NewChangeListingStatusCommand constructor",
)

// ChangeListingStatusCommand moves a listing to the target market state:
// activate, mark pending, settle as sold or rented, or archive.
type ChangeListingStatusCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	target    listing.Status

	guard guard.ConstructorGuard
}

// NewChangeListingStatusCommand creates a command to change a listing's
// status.
func NewChangeListingStatusCommand(listingID kernel.UUID, target listing.Status) (ChangeListingStatusCommand, error) {
	cmd := ChangeListingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeListingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeListingStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeListingStatusCommandIsNotConstructed)
}

// ListingID returns the listing to update.
func (c ChangeListingStatusCommand) ListingID() kernel.UUID { return c.listingID }

// Target returns the market state the listing should reach.
func (c ChangeListingStatusCommand) Target() listing.Status { return c.target }

func (c *ChangeListingStatusCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *ChangeListingStatusCommand) setTarget(target listing.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
