package commands

import (
	"errors"
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrRemoveListingCommandIsNotConstructed = errors.New(
	"RemoveListingCommand must be created via NewRemoveListingCommand constructor",
)

// RemoveListingCommand soft-deletes a listing. The row stays in storage
// for audit and recovery; default reads stop returning it.
type RemoveListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	now       time.Time

	guard guard.ConstructorGuard
}

// NewRemoveListingCommand creates a command to soft-delete a listing at
// the given instant.
func NewRemoveListingCommand(listingID kernel.UUID, now time.Time) (RemoveListingCommand, error) {
	cmd := RemoveListingCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setListingID(listingID); err != nil {
		return RemoveListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveListingCommand) Validate() error {
	return c.guard.Validate(ErrRemoveListingCommandIsNotConstructed)
}

// ListingID returns the listing to remove.
func (c RemoveListingCommand) ListingID() kernel.UUID { return c.listingID }

// Now returns the removal instant to stamp.
func (c RemoveListingCommand) Now() time.Time { return c.now }

func (c *RemoveListingCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}
