package delivery

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via the owning Package")

// Item references one variant of a media asset within a delivery package.
// The sort order is unique per package and owned by the aggregate:
// reordering goes through Package.ReorderItems.
type Item struct {
	id           kernel.UUID
	mediaAssetID kernel.UUID
	variantName  string
	sortOrder    int

	guard guard.ConstructorGuard
}

// newItem constructs an item. Only the owning package calls this.
func newItem(id, mediaAssetID kernel.UUID, variantName string, sortOrder int) (*Item, error) {
	item := &Item{
		sortOrder: sortOrder,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setMediaAssetID(mediaAssetID),
		item.setVariantName(variantName),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(id, mediaAssetID kernel.UUID, variantName string, sortOrder int) (*Item, error) {
	return newItem(id, mediaAssetID, variantName, sortOrder)
}

// Validate ensures the Item was created through the owning aggregate.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// MediaAssetID returns the referenced media asset.
func (i *Item) MediaAssetID() kernel.UUID { return i.mediaAssetID }

// VariantName returns the referenced variant of the asset.
func (i *Item) VariantName() string { return i.variantName }

// SortOrder returns the item's position within the package.
func (i *Item) SortOrder() int { return i.sortOrder }

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMediaAssetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("mediaAssetId", err)
	}
	i.mediaAssetID = id
	return nil
}

func (i *Item) setVariantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("variantName")
	}
	i.variantName = name
	return nil
}
