package commands

import (
	"errors"
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrCreateDeliveryPackageCommandIsNotConstructed = errors.New(
	"CreateDeliveryPackageCommand must be created via NewCreateDeliveryPackageCommand constructor",
)

// CreateDeliveryPackageCommand requests a new draft delivery package for a
// fulfilled shoot order.
type CreateDeliveryPackageCommand struct { //nolint:recvcheck //using for validation
	packageID        kernel.UUID
	orderID          kernel.UUID
	listingID        kernel.UUID
	title            string
	watermarkEnabled bool
	expiresAt        *time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPackageCommand creates a command to open a draft
// delivery package. The expiry deadline is optional.
func NewCreateDeliveryPackageCommand(
	packageID, orderID, listingID kernel.UUID,
	title string,
	watermarkEnabled bool,
	expiresAt *time.Time,
) (CreateDeliveryPackageCommand, error) {
	cmd := CreateDeliveryPackageCommand{
		watermarkEnabled: watermarkEnabled,
		expiresAt:        expiresAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setOrderID(orderID),
		cmd.setListingID(listingID),
		cmd.setTitle(title),
	); err != nil {
		return CreateDeliveryPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryPackageCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPackageCommandIsNotConstructed)
}

// PackageID returns the identifier for the new package.
func (c CreateDeliveryPackageCommand) PackageID() kernel.UUID { return c.packageID }

// OrderID returns the fulfilled shoot order.
func (c CreateDeliveryPackageCommand) OrderID() kernel.UUID { return c.orderID }

// ListingID returns the listing the media belongs to.
func (c CreateDeliveryPackageCommand) ListingID() kernel.UUID { return c.listingID }

// Title returns the package headline shown to recipients.
func (c CreateDeliveryPackageCommand) Title() string { return c.title }

// WatermarkEnabled reports whether delivered media carries a watermark.
func (c CreateDeliveryPackageCommand) WatermarkEnabled() bool { return c.watermarkEnabled }

// ExpiresAt returns the optional expiry deadline.
func (c CreateDeliveryPackageCommand) ExpiresAt() *time.Time { return c.expiresAt }

func (c *CreateDeliveryPackageCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}

func (c *CreateDeliveryPackageCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateDeliveryPackageCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *CreateDeliveryPackageCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}
