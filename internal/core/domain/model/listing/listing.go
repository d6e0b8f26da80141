package listing

import (
	"errors"
	"fmt"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing was created
	// without the factory.
	ErrListingIsNotConstructed = errors.New(
		"listing is not constructed, use listing.NewListing")

	// ErrMediaRefNotFound is returned when a media reference does not
	// belong to the listing.
	ErrMediaRefNotFound = errors.New("media ref not found in the listing")
)

// Listing is a property advertised by an agency. It owns its media
// references and agent snapshots; the slug derived from the title is the
// natural key agencies look listings up by.
//
// Invariants:
//   - media ref sort order is unique within the listing
//   - at most one media ref carries the cover flag
//   - at most one agent snapshot is primary
//   - an archived listing rejects further mutation
type Listing struct {
	kernel.Removal

	id            kernel.UUID
	ownerAgencyID kernel.UUID
	title         string
	description   string
	priceCents    *int64
	status        Status
	listingType   ListingType
	propertyType  PropertyType
	address       kernel.Address
	slug          kernel.Slug
	mediaRefs     []*MediaRef
	agents        []*AgentSnapshot

	guard guard.ConstructorGuard
}

// NewListing creates a listing in Draft status. The slug is derived from
// the title once and stays stable across later edits.
func NewListing(
	id, ownerAgencyID kernel.UUID,
	title, description string,
	priceCents *int64,
	listingType ListingType,
	propertyType PropertyType,
	address kernel.Address,
) (*Listing, error) {
	lst := &Listing{
		description: description,
		status:      Draft,
		mediaRefs:   make([]*MediaRef, 0),
		agents:      make([]*AgentSnapshot, 0),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lst.setID(id),
		lst.setOwnerAgencyID(ownerAgencyID),
		lst.setTitle(title),
		lst.setPriceCents(priceCents),
		lst.setListingType(listingType),
		lst.setPropertyType(propertyType),
		lst.setAddress(address),
	); err != nil {
		return nil, err
	}

	slug, err := kernel.SlugFrom(title)
	if err != nil {
		return nil, err
	}
	lst.slug = slug

	return lst, nil
}

// RestoreListing reconstructs a listing from persistence, bypassing
// transition rules but re-validating values and owned entities.
func RestoreListing(
	id, ownerAgencyID kernel.UUID,
	title, description string,
	priceCents *int64,
	status Status,
	listingType ListingType,
	propertyType PropertyType,
	address kernel.Address,
	slug kernel.Slug,
	mediaRefs []*MediaRef,
	agents []*AgentSnapshot,
	removal kernel.Removal,
) (*Listing, error) {
	lst := &Listing{
		Removal:     removal,
		description: description,
		mediaRefs:   mediaRefs,
		agents:      agents,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lst.setID(id),
		lst.setOwnerAgencyID(ownerAgencyID),
		lst.setTitle(title),
		lst.setPriceCents(priceCents),
		lst.setListingType(listingType),
		lst.setPropertyType(propertyType),
		lst.setAddress(address),
		status.Validate(),
		slug.Validate(),
	); err != nil {
		return nil, err
	}

	for _, ref := range mediaRefs {
		if err := ref.Validate(); err != nil {
			return nil, err
		}
	}
	for _, agent := range agents {
		if err := agent.Validate(); err != nil {
			return nil, err
		}
	}

	lst.status = status
	lst.slug = slug
	return lst, nil
}

// Validate ensures the Listing was created through the factory.
func (l *Listing) Validate() error {
	return l.guard.Validate(ErrListingIsNotConstructed)
}

// IsEqual compares two listings by identifier.
func (l *Listing) IsEqual(other *Listing) bool {
	return l.id.IsEqual(other.id)
}

// ID returns the listing identifier.
func (l *Listing) ID() kernel.UUID { return l.id }

// OwnerAgencyID returns the agency that owns the listing.
func (l *Listing) OwnerAgencyID() kernel.UUID { return l.ownerAgencyID }

// Title returns the advertised headline.
func (l *Listing) Title() string { return l.title }

// Description returns the advertised copy.
func (l *Listing) Description() string { return l.description }

// PriceCents returns the advertised price in minor units, nil when the
// listing has no published price.
func (l *Listing) PriceCents() *int64 { return l.priceCents }

// Status returns the market state.
func (l *Listing) Status() Status { return l.status }

// ListingType returns whether the property is for sale or rent.
func (l *Listing) ListingType() ListingType { return l.listingType }

// PropertyType returns the property classification.
func (l *Listing) PropertyType() PropertyType { return l.propertyType }

// Address returns the property address.
func (l *Listing) Address() kernel.Address { return l.address }

// Slug returns the natural key derived from the title at creation.
func (l *Listing) Slug() kernel.Slug { return l.slug }

// MediaRefs returns the media references in attachment order.
func (l *Listing) MediaRefs() []*MediaRef {
	refs := make([]*MediaRef, len(l.mediaRefs))
	copy(refs, l.mediaRefs)
	return refs
}

// Agents returns the agent snapshots in assignment order.
func (l *Listing) Agents() []*AgentSnapshot {
	agents := make([]*AgentSnapshot, len(l.agents))
	copy(agents, l.agents)
	return agents
}

// Activate puts the listing on the market.
func (l *Listing) Activate() error {
	newStatus, err := l.status.Activate()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// MarkPending records an accepted offer awaiting settlement.
func (l *Listing) MarkPending() error {
	newStatus, err := l.status.MarkPending()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// MarkSold records a settled sale.
func (l *Listing) MarkSold() error {
	newStatus, err := l.status.MarkSold()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// MarkRented records a signed lease.
func (l *Listing) MarkRented() error {
	newStatus, err := l.status.MarkRented()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// Archive withdraws the listing from circulation.
func (l *Listing) Archive() error {
	newStatus, err := l.status.Archive()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// AttachMedia references a processed asset from the listing.
//
// Business rules:
//   - The sort order must be unique within the listing
//   - Archived listings reject media mutation
func (l *Listing) AttachMedia(
	refID, mediaAssetID kernel.UUID,
	role MediaRole,
	sortOrder int,
) (*MediaRef, error) {
	if err := l.requireNotArchived("attach media"); err != nil {
		return nil, err
	}
	for _, existing := range l.mediaRefs {
		if existing.sortOrder == sortOrder {
			return nil, errs.NewConflictError("sortOrder", sortOrder)
		}
	}

	ref, err := newMediaRef(refID, mediaAssetID, role, sortOrder)
	if err != nil {
		return nil, err
	}

	l.mediaRefs = append(l.mediaRefs, ref)
	return ref, nil
}

// SetCover marks one media reference as the cover image, clearing the
// flag from every other reference.
func (l *Listing) SetCover(refID kernel.UUID) error {
	if err := l.requireNotArchived("set cover"); err != nil {
		return err
	}

	target := l.mediaRefByID(refID)
	if target == nil {
		return ErrMediaRefNotFound
	}

	for _, ref := range l.mediaRefs {
		ref.isCover = false
	}
	target.isCover = true
	return nil
}

// SetMediaVisibility shows or hides one media reference.
func (l *Listing) SetMediaVisibility(refID kernel.UUID, visible bool) error {
	if err := l.requireNotArchived("set media visibility"); err != nil {
		return err
	}

	ref := l.mediaRefByID(refID)
	if ref == nil {
		return ErrMediaRefNotFound
	}
	ref.isVisible = visible
	return nil
}

// AssignAgent captures an agent's contact details on the listing.
//
// Business rules:
//   - An agent may appear on a listing only once
//   - A primary assignment demotes any previous primary
//   - Archived listings reject agent mutation
func (l *Listing) AssignAgent(
	snapshotID, agentID kernel.UUID,
	name, email, phone string,
	isPrimary bool,
) (*AgentSnapshot, error) {
	if err := l.requireNotArchived("assign agent"); err != nil {
		return nil, err
	}
	for _, existing := range l.agents {
		if existing.agentID.IsEqual(agentID) {
			return nil, errs.NewConflictError("agentId", agentID.String())
		}
	}

	snapshot, err := newAgentSnapshot(snapshotID, agentID, name, email, phone, len(l.agents))
	if err != nil {
		return nil, err
	}

	if isPrimary {
		for _, existing := range l.agents {
			existing.isPrimary = false
		}
		snapshot.isPrimary = true
	}

	l.agents = append(l.agents, snapshot)
	return snapshot, nil
}

func (l *Listing) mediaRefByID(refID kernel.UUID) *MediaRef {
	for _, ref := range l.mediaRefs {
		if ref.id.IsEqual(refID) {
			return ref
		}
	}
	return nil
}

func (l *Listing) requireNotArchived(operation string) error {
	if l.status == Archived {
		return errs.NewInvalidOperationErrorWithCause(operation,
			fmt.Errorf("listing is archived"))
	}
	return nil
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setOwnerAgencyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.ownerAgencyID = id
	return nil
}

func (l *Listing) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setPriceCents(priceCents *int64) error {
	if priceCents != nil && *priceCents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("priceCents",
			fmt.Errorf("%d is not greater than 0", *priceCents))
	}
	l.priceCents = priceCents
	return nil
}

func (l *Listing) setListingType(listingType ListingType) error {
	if err := listingType.Validate(); err != nil {
		return err
	}
	l.listingType = listingType
	return nil
}

func (l *Listing) setPropertyType(propertyType PropertyType) error {
	if err := propertyType.Validate(); err != nil {
		return err
	}
	l.propertyType = propertyType
	return nil
}

func (l *Listing) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	l.address = address
	return nil
}
