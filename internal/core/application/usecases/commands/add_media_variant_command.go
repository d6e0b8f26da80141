package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrAddMediaVariantCommandIsNotConstructed = errors.New(
	"AddMediaVariantCommand must be created via NewAddMediaVariantCommand constructor",
)

// AddMediaVariantCommand records one rendition the processing pipeline
// produced for an asset.
type AddMediaVariantCommand struct { //nolint:recvcheck //using for validation
	assetID   kernel.UUID
	variantID kernel.UUID
	name      string
	url       string
	width     *int
	height    *int
	bitrate   *int
	sizeBytes *int64

	guard guard.ConstructorGuard
}

// NewAddMediaVariantCommand creates a command to record a rendition.
// Dimensions, bitrate and size are optional; positivity is enforced by
// the aggregate.
func NewAddMediaVariantCommand(
	assetID, variantID kernel.UUID,
	name, url string,
	width, height, bitrate *int,
	sizeBytes *int64,
) (AddMediaVariantCommand, error) {
	cmd := AddMediaVariantCommand{
		width:     width,
		height:    height,
		bitrate:   bitrate,
		sizeBytes: sizeBytes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssetID(assetID),
		cmd.setVariantID(variantID),
		cmd.setName(name),
		cmd.setURL(url),
	); err != nil {
		return AddMediaVariantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMediaVariantCommand) Validate() error {
	return c.guard.Validate(ErrAddMediaVariantCommandIsNotConstructed)
}

// AssetID returns the asset the rendition belongs to.
func (c AddMediaVariantCommand) AssetID() kernel.UUID { return c.assetID }

// VariantID returns the identifier for the new rendition.
func (c AddMediaVariantCommand) VariantID() kernel.UUID { return c.variantID }

// Name returns the rendition name, unique within the asset.
func (c AddMediaVariantCommand) Name() string { return c.name }

// URL returns where the rendition can be fetched.
func (c AddMediaVariantCommand) URL() string { return c.url }

// Width returns the pixel width, when known.
func (c AddMediaVariantCommand) Width() *int { return c.width }

// Height returns the pixel height, when known.
func (c AddMediaVariantCommand) Height() *int { return c.height }

// Bitrate returns the encoding bitrate, when known.
func (c AddMediaVariantCommand) Bitrate() *int { return c.bitrate }

// SizeBytes returns the rendition size in bytes, when known.
func (c AddMediaVariantCommand) SizeBytes() *int64 { return c.sizeBytes }

func (c *AddMediaVariantCommand) setAssetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assetID = id
	return nil
}

func (c *AddMediaVariantCommand) setVariantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.variantID = id
	return nil
}

func (c *AddMediaVariantCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddMediaVariantCommand) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}
	c.url = url
	return nil
}
