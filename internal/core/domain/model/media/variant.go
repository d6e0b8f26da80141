package media

import (
	"errors"
	"fmt"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrVariantIsNotConstructed is returned when a Variant was created
// without the asset's factory.
var ErrVariantIsNotConstructed = errors.New(
	"variant is not constructed, use media.MediaAsset to create variants")

// Variant is one rendition of an asset: a resized image, a transcoded
// clip, a thumbnail. The name is unique within the owning asset.
type Variant struct {
	id        kernel.UUID
	name      string
	url       string
	width     *int
	height    *int
	bitrate   *int
	sizeBytes *int64

	guard guard.ConstructorGuard
}

// newVariant constructs a variant. Only the owning asset calls this.
func newVariant(
	id kernel.UUID,
	name, url string,
	width, height, bitrate *int,
	sizeBytes *int64,
) (*Variant, error) {
	variant := &Variant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		variant.setID(id),
		variant.setName(name),
		variant.setURL(url),
		variant.setWidth(width),
		variant.setHeight(height),
		variant.setBitrate(bitrate),
		variant.setSizeBytes(sizeBytes),
	); err != nil {
		return nil, err
	}

	return variant, nil
}

// RestoreVariant reconstructs a variant from persistence.
func RestoreVariant(
	id kernel.UUID,
	name, url string,
	width, height, bitrate *int,
	sizeBytes *int64,
) (*Variant, error) {
	return newVariant(id, name, url, width, height, bitrate, sizeBytes)
}

// Validate ensures the Variant was created through the owning aggregate.
func (v *Variant) Validate() error {
	return v.guard.Validate(ErrVariantIsNotConstructed)
}

// ID returns the variant identifier.
func (v *Variant) ID() kernel.UUID { return v.id }

// Name returns the rendition name, unique within the asset.
func (v *Variant) Name() string { return v.name }

// URL returns where the rendition can be fetched.
func (v *Variant) URL() string { return v.url }

// Width returns the pixel width, when known.
func (v *Variant) Width() *int { return v.width }

// Height returns the pixel height, when known.
func (v *Variant) Height() *int { return v.height }

// Bitrate returns the encoding bitrate, when known.
func (v *Variant) Bitrate() *int { return v.bitrate }

// SizeBytes returns the rendition size in bytes, when known.
func (v *Variant) SizeBytes() *int64 { return v.sizeBytes }

func (v *Variant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Variant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.name = name
	return nil
}

func (v *Variant) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}
	v.url = url
	return nil
}

func (v *Variant) setWidth(width *int) error {
	if err := requirePositive("width", width); err != nil {
		return err
	}
	v.width = width
	return nil
}

func (v *Variant) setHeight(height *int) error {
	if err := requirePositive("height", height); err != nil {
		return err
	}
	v.height = height
	return nil
}

func (v *Variant) setBitrate(bitrate *int) error {
	if err := requirePositive("bitrate", bitrate); err != nil {
		return err
	}
	v.bitrate = bitrate
	return nil
}

func (v *Variant) setSizeBytes(sizeBytes *int64) error {
	if sizeBytes != nil && *sizeBytes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sizeBytes",
			fmt.Errorf("%d is not greater than 0", *sizeBytes))
	}
	v.sizeBytes = sizeBytes
	return nil
}

func requirePositive(paramName string, value *int) error {
	if value != nil && *value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is not greater than 0", *value))
	}
	return nil
}
