package delivery

import (
	"errors"
	"fmt"
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through the NewPackage factory.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// ErrAccessNotFound is returned when an access id does not belong to the package.
var ErrAccessNotFound = errors.New("access not found on package")

// Package represents a media delivery package assembled by a studio for a
// fulfilled shoot order. It is the aggregate root owning delivery items and
// access grants, and enforces the Draft -> Published -> {Expired, Revoked}
// lifecycle.
//
// Package follows these invariants:
//   - Items and accesses mutate only while the package is Draft
//   - Item sort orders are unique within the package
//   - Expiry happens only from Published and only once the deadline elapsed
//   - Download counting happens only on a Published package and respects
//     each access's quota
type Package struct {
	kernel.Removal

	// id is the unique identifier for the package
	id kernel.UUID
	// orderID is the shoot order this package delivers
	orderID kernel.UUID
	// listingID is the listing the media belongs to
	listingID kernel.UUID
	// title is the recipient-facing package name
	title string
	// status is the package's position in its lifecycle
	status Status
	// watermarkEnabled toggles watermarking on delivered previews
	watermarkEnabled bool
	// expiresAt is the optional publication deadline
	expiresAt *time.Time
	// items is the ordered collection of delivered asset variants
	items []*Item
	// accesses are the grants describing who may retrieve the package
	accesses []*Access

	guard guard.ConstructorGuard
}

// NewPackage creates a delivery package in Draft status with no items or
// accesses. The expiry deadline is optional; when set it is normalized to UTC.
func NewPackage(
	id, orderID, listingID kernel.UUID,
	title string,
	watermarkEnabled bool,
	expiresAt *time.Time,
) (*Package, error) {
	pkg := &Package{
		status:           Draft,
		watermarkEnabled: watermarkEnabled,
		items:            make([]*Item, 0),
		accesses:         make([]*Access, 0),
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setOrderID(orderID),
		pkg.setListingID(listingID),
		pkg.setTitle(title),
	); err != nil {
		return nil, err
	}

	pkg.setExpiresAt(expiresAt)
	return pkg, nil
}

// RestorePackage reconstructs a package from persistence, bypassing
// transition rules but re-validating values and owned entities.
func RestorePackage(
	id, orderID, listingID kernel.UUID,
	title string,
	status Status,
	watermarkEnabled bool,
	expiresAt *time.Time,
	items []*Item,
	accesses []*Access,
	removal kernel.Removal,
) (*Package, error) {
	pkg := &Package{
		Removal:          removal,
		watermarkEnabled: watermarkEnabled,
		items:            items,
		accesses:         accesses,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setOrderID(orderID),
		pkg.setListingID(listingID),
		pkg.setTitle(title),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, access := range accesses {
		if err := access.Validate(); err != nil {
			return nil, err
		}
	}

	pkg.status = status
	pkg.setExpiresAt(expiresAt)
	return pkg, nil
}

// Validate ensures the Package was created via NewPackage or RestorePackage.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID { return p.id }

// OrderID returns the delivered shoot order's identifier.
func (p *Package) OrderID() kernel.UUID { return p.orderID }

// ListingID returns the listing the media belongs to.
func (p *Package) ListingID() kernel.UUID { return p.listingID }

// Title returns the recipient-facing package name.
func (p *Package) Title() string { return p.title }

// Status returns the package's current lifecycle status.
func (p *Package) Status() Status { return p.status }

// WatermarkEnabled reports whether delivered previews carry a watermark.
func (p *Package) WatermarkEnabled() bool { return p.watermarkEnabled }

// ExpiresAt returns the optional publication deadline in UTC.
func (p *Package) ExpiresAt() *time.Time { return p.expiresAt }

// Items returns a copy of the ordered item collection.
func (p *Package) Items() []*Item {
	items := make([]*Item, len(p.items))
	copy(items, p.items)
	return items
}

// Accesses returns a copy of the access grant collection.
func (p *Package) Accesses() []*Access {
	accesses := make([]*Access, len(p.accesses))
	copy(accesses, p.accesses)
	return accesses
}

// AddItem appends an asset variant reference to the package.
//
// Business rules:
//   - The package must be Draft; Published packages reject item mutation
//   - The sort order must be unique within the package
func (p *Package) AddItem(itemID, mediaAssetID kernel.UUID, variantName string, sortOrder int) (*Item, error) {
	if err := p.requireDraft("add item"); err != nil {
		return nil, err
	}
	for _, existing := range p.items {
		if existing.sortOrder == sortOrder {
			return nil, errs.NewConflictError("sortOrder", sortOrder)
		}
	}

	item, err := newItem(itemID, mediaAssetID, variantName, sortOrder)
	if err != nil {
		return nil, err
	}

	p.items = append(p.items, item)
	return item, nil
}

// ReorderItems rewrites the sort order of every item. The ids must match the
// package's items exactly: each id once, no strangers.
func (p *Package) ReorderItems(orderedIDs []kernel.UUID) error {
	if err := p.requireDraft("reorder items"); err != nil {
		return err
	}
	if len(orderedIDs) != len(p.items) {
		return errs.NewValueIsInvalidErrorWithCause("orderedIds",
			fmt.Errorf("expected %d ids, got %d", len(p.items), len(orderedIDs)))
	}

	reordered := make([]*Item, 0, len(p.items))
	seen := make(map[kernel.UUID]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if seen[id] {
			return errs.NewValueIsInvalidErrorWithCause("orderedIds",
				fmt.Errorf("id %s appears twice", id))
		}
		seen[id] = true

		found := false
		for _, item := range p.items {
			if item.id.IsEqual(id) {
				reordered = append(reordered, item)
				found = true
				break
			}
		}
		if !found {
			return errs.NewValueIsInvalidErrorWithCause("orderedIds",
				fmt.Errorf("id %s does not belong to the package", id))
		}
	}

	for i, item := range reordered {
		item.sortOrder = i
	}
	p.items = reordered
	return nil
}

// GrantAccess adds an access grant to the Draft package. Password hashing is
// the caller's collaborator: only the hash ever reaches the aggregate.
func (p *Package) GrantAccess(
	accessID kernel.UUID,
	accessType AccessType,
	recipientEmail, recipientName string,
	maxDownloads *int,
	passwordHash string,
) (*Access, error) {
	if err := p.requireDraft("grant access"); err != nil {
		return nil, err
	}

	access, err := newAccess(accessID, accessType, recipientEmail, recipientName, maxDownloads, passwordHash)
	if err != nil {
		return nil, err
	}

	p.accesses = append(p.accesses, access)
	return access, nil
}

// Publish releases the package to its recipients. Valid only from Draft.
func (p *Package) Publish() error {
	newStatus, err := p.status.Publish()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// Revoke withdraws a published package. Valid only from Published.
func (p *Package) Revoke() error {
	newStatus, err := p.status.Revoke()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// Expire transitions a published package to Expired once its deadline
// elapsed. The periodic sweep drives this explicitly so downstream
// consumers can keep querying by status; nothing derives expiry at read time.
func (p *Package) Expire(now time.Time) error {
	if p.expiresAt == nil || now.Before(*p.expiresAt) {
		return errs.NewInvalidOperationErrorWithCause("expire",
			fmt.Errorf("package deadline has not elapsed"))
	}

	newStatus, err := p.status.Expire()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// IsExpirable reports whether the sweep should expire the package now.
func (p *Package) IsExpirable(now time.Time) bool {
	return p.status == Published && p.expiresAt != nil && !now.Before(*p.expiresAt)
}

// RegisterDownload counts one successful retrieval against the identified
// access grant. The package must be Published; the access's quota is
// enforced with an atomic check-and-increment that fails with
// QuotaExceededError rather than allowing overflow.
func (p *Package) RegisterDownload(accessID kernel.UUID) error {
	if p.status != Published {
		return errs.NewInvalidOperationErrorWithCause("register download",
			fmt.Errorf("package is %s", p.status.String()))
	}

	for _, access := range p.accesses {
		if access.id.IsEqual(accessID) {
			return access.registerDownload()
		}
	}
	return ErrAccessNotFound
}

func (p *Package) requireDraft(operation string) error {
	if p.status != Draft {
		return errs.NewInvalidOperationErrorWithCause(operation,
			fmt.Errorf("package is %s, mutation requires Draft", p.status.String()))
	}
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	p.orderID = id
	return nil
}

func (p *Package) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("listingId", err)
	}
	p.listingID = id
	return nil
}

func (p *Package) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Package) setExpiresAt(expiresAt *time.Time) {
	if expiresAt == nil {
		p.expiresAt = nil
		return
	}
	utc := expiresAt.UTC()
	p.expiresAt = &utc
}
