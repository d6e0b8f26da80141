package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrPlaceShootOrderCommandIsNotConstructed = errors.New(
	"PlaceShootOrderCommand must be created via NewPlaceShootOrderCommand constructor",
)

// PlaceShootOrderCommand represents a request to place a new shoot order
// against a studio on behalf of an agency.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceShootOrderCommand(orderID, agencyID, studioID, listingID, agentID, "AUD")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceShootOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceShootOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	agencyID  kernel.UUID
	studioID  kernel.UUID
	listingID kernel.UUID
	createdBy kernel.UUID
	currency  kernel.Currency

	guard guard.ConstructorGuard
}

// NewPlaceShootOrderCommand creates a command to place a new shoot order.
// Validates every identifier and parses the ISO-4217 currency code.
func NewPlaceShootOrderCommand(
	orderID, agencyID, studioID, listingID, createdBy kernel.UUID,
	currencyCode string,
) (PlaceShootOrderCommand, error) {
	cmd := PlaceShootOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	currency, err := kernel.NewCurrency(currencyCode)
	if err != nil {
		return PlaceShootOrderCommand{}, err
	}
	cmd.currency = currency

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgencyID(agencyID),
		cmd.setStudioID(studioID),
		cmd.setListingID(listingID),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return PlaceShootOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceShootOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceShootOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceShootOrderCommand) OrderID() kernel.UUID { return c.orderID }

// AgencyID returns the ordering agency.
func (c PlaceShootOrderCommand) AgencyID() kernel.UUID { return c.agencyID }

// StudioID returns the fulfilling studio.
func (c PlaceShootOrderCommand) StudioID() kernel.UUID { return c.studioID }

// ListingID returns the listing the shoot is for.
func (c PlaceShootOrderCommand) ListingID() kernel.UUID { return c.listingID }

// CreatedBy returns the agency user placing the order.
func (c PlaceShootOrderCommand) CreatedBy() kernel.UUID { return c.createdBy }

// Currency returns the currency pricing the order's tasks.
func (c PlaceShootOrderCommand) Currency() kernel.Currency { return c.currency }

func (c *PlaceShootOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceShootOrderCommand) setAgencyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.agencyID = id
	return nil
}

func (c *PlaceShootOrderCommand) setStudioID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.studioID = id
	return nil
}

func (c *PlaceShootOrderCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *PlaceShootOrderCommand) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.createdBy = id
	return nil
}
