package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/pkg/guard"
)

var ErrAttachListingMediaCommandIsNotConstructed = errors.New(
	"AttachListingMediaCommand must be created via NewAttachListingMediaCommand constructor",
)

// AttachListingMediaCommand references a processed asset from a listing,
// optionally making it the cover image.
type AttachListingMediaCommand struct { //nolint:recvcheck //using for validation
	listingID    kernel.UUID
	refID        kernel.UUID
	mediaAssetID kernel.UUID
	role         listing.MediaRole
	sortOrder    int
	asCover      bool

	guard guard.ConstructorGuard
}

// NewAttachListingMediaCommand creates a command to attach media to a
// listing.
func NewAttachListingMediaCommand(
	listingID, refID, mediaAssetID kernel.UUID,
	role listing.MediaRole,
	sortOrder int,
	asCover bool,
) (AttachListingMediaCommand, error) {
	cmd := AttachListingMediaCommand{
		sortOrder: sortOrder,
		asCover:   asCover,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setRefID(refID),
		cmd.setMediaAssetID(mediaAssetID),
		cmd.setRole(role),
	); err != nil {
		return AttachListingMediaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachListingMediaCommand) Validate() error {
	return c.guard.Validate(ErrAttachListingMediaCommandIsNotConstructed)
}

// ListingID returns the listing to attach media to.
func (c AttachListingMediaCommand) ListingID() kernel.UUID { return c.listingID }

// RefID returns the identifier for the new reference.
func (c AttachListingMediaCommand) RefID() kernel.UUID { return c.refID }

// MediaAssetID returns the referenced asset.
func (c AttachListingMediaCommand) MediaAssetID() kernel.UUID { return c.mediaAssetID }

// Role returns what the asset is used for.
func (c AttachListingMediaCommand) Role() listing.MediaRole { return c.role }

// SortOrder returns the display position within the listing.
func (c AttachListingMediaCommand) SortOrder() int { return c.sortOrder }

// AsCover reports whether the new reference becomes the cover image.
func (c AttachListingMediaCommand) AsCover() bool { return c.asCover }

func (c *AttachListingMediaCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *AttachListingMediaCommand) setRefID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.refID = id
	return nil
}

func (c *AttachListingMediaCommand) setMediaAssetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.mediaAssetID = id
	return nil
}

func (c *AttachListingMediaCommand) setRole(role listing.MediaRole) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
