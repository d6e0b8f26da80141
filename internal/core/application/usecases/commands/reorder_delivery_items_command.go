package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrReorderDeliveryItemsCommandIsNotConstructed = errors.New(
	"ReorderDeliveryItemsCommand must be created via NewReorderDeliveryItemsCommand constructor",
)

// ReorderDeliveryItemsCommand rewrites the display order of a draft
// package's items. The ordered ids must name every current item exactly
// once.
type ReorderDeliveryItemsCommand struct { //nolint:recvcheck //using for validation
	packageID  kernel.UUID
	orderedIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReorderDeliveryItemsCommand creates a command to reorder a package's
// items into the given sequence.
func NewReorderDeliveryItemsCommand(
	packageID kernel.UUID,
	orderedIDs []kernel.UUID,
) (ReorderDeliveryItemsCommand, error) {
	cmd := ReorderDeliveryItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setOrderedIDs(orderedIDs),
	); err != nil {
		return ReorderDeliveryItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderDeliveryItemsCommand) Validate() error {
	return c.guard.Validate(ErrReorderDeliveryItemsCommandIsNotConstructed)
}

// PackageID returns the package whose items are reordered.
func (c ReorderDeliveryItemsCommand) PackageID() kernel.UUID { return c.packageID }

// OrderedIDs returns the item ids in their new display order.
func (c ReorderDeliveryItemsCommand) OrderedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderedIDs))
	copy(ids, c.orderedIDs)
	return ids
}

func (c *ReorderDeliveryItemsCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}

func (c *ReorderDeliveryItemsCommand) setOrderedIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderedIds")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderedIDs = make([]kernel.UUID, len(ids))
	copy(c.orderedIDs, ids)
	return nil
}
