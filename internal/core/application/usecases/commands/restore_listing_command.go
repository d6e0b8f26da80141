package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrRestoreListingCommandIsNotConstructed = errors.New(
	"RestoreListingCommand must be created via NewRestoreListingCommand constructor",
)

// RestoreListingCommand recovers a soft-deleted listing so default reads
// return it again.
type RestoreListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreListingCommand creates a command to restore a listing.
func NewRestoreListingCommand(listingID kernel.UUID) (RestoreListingCommand, error) {
	cmd := RestoreListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setListingID(listingID); err != nil {
		return RestoreListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreListingCommand) Validate() error {
	return c.guard.Validate(ErrRestoreListingCommandIsNotConstructed)
}

// ListingID returns the listing to restore.
func (c RestoreListingCommand) ListingID() kernel.UUID { return c.listingID }

func (c *RestoreListingCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}
