package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrAddDeliveryItemCommandIsNotConstructed = errors.New(
	"AddDeliveryItemCommand must be created via NewAddDeliveryItemCommand constructor",
)

// AddDeliveryItemCommand requests one media rendition on a draft delivery
// package at the given display position.
type AddDeliveryItemCommand struct { //nolint:recvcheck //using for validation
	packageID    kernel.UUID
	itemID       kernel.UUID
	mediaAssetID kernel.UUID
	variantName  string
	sortOrder    int

	guard guard.ConstructorGuard
}

// NewAddDeliveryItemCommand creates a command to add an item to a package.
func NewAddDeliveryItemCommand(
	packageID, itemID, mediaAssetID kernel.UUID,
	variantName string,
	sortOrder int,
) (AddDeliveryItemCommand, error) {
	cmd := AddDeliveryItemCommand{
		sortOrder: sortOrder,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setItemID(itemID),
		cmd.setMediaAssetID(mediaAssetID),
		cmd.setVariantName(variantName),
	); err != nil {
		return AddDeliveryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryItemCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryItemCommandIsNotConstructed)
}

// PackageID returns the package to add the item to.
func (c AddDeliveryItemCommand) PackageID() kernel.UUID { return c.packageID }

// ItemID returns the identifier for the new item.
func (c AddDeliveryItemCommand) ItemID() kernel.UUID { return c.itemID }

// MediaAssetID returns the delivered asset.
func (c AddDeliveryItemCommand) MediaAssetID() kernel.UUID { return c.mediaAssetID }

// VariantName returns which rendition of the asset is delivered.
func (c AddDeliveryItemCommand) VariantName() string { return c.variantName }

// SortOrder returns the display position within the package.
func (c AddDeliveryItemCommand) SortOrder() int { return c.sortOrder }

func (c *AddDeliveryItemCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}

func (c *AddDeliveryItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *AddDeliveryItemCommand) setMediaAssetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.mediaAssetID = id
	return nil
}

func (c *AddDeliveryItemCommand) setVariantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("variantName")
	}
	c.variantName = name
	return nil
}
