package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

// CreateListingCommand requests a new draft listing for an agency. The
// slug derived from the title must be unique within the agency.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID     kernel.UUID
	ownerAgencyID kernel.UUID
	title         string
	description   string
	priceCents    *int64
	listingType   listing.ListingType
	propertyType  listing.PropertyType
	address       kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to open a draft listing.
func NewCreateListingCommand(
	listingID, ownerAgencyID kernel.UUID,
	title, description string,
	priceCents *int64,
	listingType listing.ListingType,
	propertyType listing.PropertyType,
	address kernel.Address,
) (CreateListingCommand, error) {
	cmd := CreateListingCommand{
		description: description,
		priceCents:  priceCents,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setOwnerAgencyID(ownerAgencyID),
		cmd.setTitle(title),
		cmd.setListingType(listingType),
		cmd.setPropertyType(propertyType),
		cmd.setAddress(address),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// ListingID returns the identifier for the new listing.
func (c CreateListingCommand) ListingID() kernel.UUID { return c.listingID }

// OwnerAgencyID returns the agency opening the listing.
func (c CreateListingCommand) OwnerAgencyID() kernel.UUID { return c.ownerAgencyID }

// Title returns the advertised headline.
func (c CreateListingCommand) Title() string { return c.title }

// Description returns the advertised copy.
func (c CreateListingCommand) Description() string { return c.description }

// PriceCents returns the optional advertised price in minor units.
func (c CreateListingCommand) PriceCents() *int64 { return c.priceCents }

// ListingType returns whether the property is for sale or rent.
func (c CreateListingCommand) ListingType() listing.ListingType { return c.listingType }

// PropertyType returns the property classification.
func (c CreateListingCommand) PropertyType() listing.PropertyType { return c.propertyType }

// Address returns the property address.
func (c CreateListingCommand) Address() kernel.Address { return c.address }

func (c *CreateListingCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *CreateListingCommand) setOwnerAgencyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerAgencyID = id
	return nil
}

func (c *CreateListingCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateListingCommand) setListingType(listingType listing.ListingType) error {
	if err := listingType.Validate(); err != nil {
		return err
	}
	c.listingType = listingType
	return nil
}

func (c *CreateListingCommand) setPropertyType(propertyType listing.PropertyType) error {
	if err := propertyType.Validate(); err != nil {
		return err
	}
	c.propertyType = propertyType
	return nil
}

func (c *CreateListingCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
