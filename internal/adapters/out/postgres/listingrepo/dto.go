// Package listingrepo maps listing aggregates to their database rows.
package listingrepo

import (
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO is the database row for a listing aggregate. The slug is
// unique per agency; the composite index backs both the dedup check and
// slug lookups.
type ListingDTO struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OwnerAgencyID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_listings_agency_slug"`
	Slug          string             `gorm:"type:varchar(255);not null;uniqueIndex:idx_listings_agency_slug"`
	Title         string             `gorm:"type:varchar(255);not null"`
	Description   string             `gorm:"type:text"`
	PriceCents    *int64
	Status        int                `gorm:"type:int;not null;index"`
	ListingType   int                `gorm:"type:int;not null"`
	PropertyType  int                `gorm:"type:int;not null"`
	Address       AddressDTO         `gorm:"embedded;embeddedPrefix:address_"`
	MediaRefs     []MediaRefDTO      `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Agents        []AgentSnapshotDTO `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`

	CreatedAtUtc time.Time
	UpdatedAtUtc time.Time
	DeletedAtUtc *time.Time `gorm:"index"`
	Version      int64      `gorm:"not null"`
}

// TableName overrides GORM's default to "listings".
func (ListingDTO) TableName() string {
	return "listings"
}

// AddressDTO is the embedded address block within the listing row.
type AddressDTO struct {
	Line1     string `gorm:"type:varchar(255)"`
	Line2     string `gorm:"type:varchar(255)"`
	Suburb    string `gorm:"type:varchar(255)"`
	City      string `gorm:"type:varchar(255)"`
	State     string `gorm:"type:varchar(255)"`
	Postcode  string `gorm:"type:varchar(32)"`
	Country   string `gorm:"type:char(2)"`
	Latitude  *float64
	Longitude *float64
}

// MediaRefDTO is the database row for a media reference owned by a listing.
type MediaRefDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MediaAssetID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role         int       `gorm:"type:int;not null"`
	SortOrder    int       `gorm:"type:int;not null"`
	IsCover      bool      `gorm:"not null"`
	IsVisible    bool      `gorm:"not null"`
}

// TableName overrides GORM's default to "listing_media_refs".
func (MediaRefDTO) TableName() string {
	return "listing_media_refs"
}

// AgentSnapshotDTO is the database row for a denormalized agent contact.
type AgentSnapshotDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	AgentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(64)"`
	IsPrimary bool      `gorm:"not null"`
	SortOrder int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default to "listing_agents".
func (AgentSnapshotDTO) TableName() string {
	return "listing_agents"
}

// fromDomain converts a listing aggregate to its database row.
func fromDomain(aggregate *listing.Listing) ListingDTO {
	listingID := aggregate.ID().Bytes()

	mediaRefs := make([]MediaRefDTO, 0, len(aggregate.MediaRefs()))
	for _, ref := range aggregate.MediaRefs() {
		mediaRefs = append(mediaRefs, MediaRefDTO{
			ID:           ref.ID().Bytes(),
			ListingID:    listingID,
			MediaAssetID: ref.MediaAssetID().Bytes(),
			Role:         int(ref.Role()),
			SortOrder:    ref.SortOrder(),
			IsCover:      ref.IsCover(),
			IsVisible:    ref.IsVisible(),
		})
	}

	agents := make([]AgentSnapshotDTO, 0, len(aggregate.Agents()))
	for _, agent := range aggregate.Agents() {
		agents = append(agents, AgentSnapshotDTO{
			ID:        agent.ID().Bytes(),
			ListingID: listingID,
			AgentID:   agent.AgentID().Bytes(),
			Name:      agent.Name(),
			Email:     agent.Email(),
			Phone:     agent.Phone(),
			IsPrimary: agent.IsPrimary(),
			SortOrder: agent.SortOrder(),
		})
	}

	address := aggregate.Address()
	return ListingDTO{
		ID:            listingID,
		OwnerAgencyID: aggregate.OwnerAgencyID().Bytes(),
		Slug:          aggregate.Slug().String(),
		Title:         aggregate.Title(),
		Description:   aggregate.Description(),
		PriceCents:    aggregate.PriceCents(),
		Status:        int(aggregate.Status()),
		ListingType:   int(aggregate.ListingType()),
		PropertyType:  int(aggregate.PropertyType()),
		Address: AddressDTO{
			Line1:     address.Line1(),
			Line2:     address.Line2(),
			Suburb:    address.Suburb(),
			City:      address.City(),
			State:     address.State(),
			Postcode:  address.Postcode(),
			Country:   address.Country(),
			Latitude:  address.Latitude(),
			Longitude: address.Longitude(),
		},
		MediaRefs:    mediaRefs,
		Agents:       agents,
		DeletedAtUtc: aggregate.DeletedAt(),
	}
}

// toDomain rebuilds the listing aggregate from its database row.
func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerAgencyID, err := kernel.UUIDFromBytes(dto.OwnerAgencyID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Line1, dto.Address.Line2,
		dto.Address.Suburb, dto.Address.City, dto.Address.State,
		dto.Address.Postcode, dto.Address.Country,
		dto.Address.Latitude, dto.Address.Longitude,
	)
	if err != nil {
		return nil, err
	}

	slug, err := kernel.SlugFrom(dto.Slug)
	if err != nil {
		return nil, err
	}

	mediaRefs := make([]*listing.MediaRef, 0, len(dto.MediaRefs))
	for _, refDto := range dto.MediaRefs {
		ref, refErr := mediaRefToDomain(refDto)
		if refErr != nil {
			return nil, refErr
		}
		mediaRefs = append(mediaRefs, ref)
	}

	agents := make([]*listing.AgentSnapshot, 0, len(dto.Agents))
	for _, agentDto := range dto.Agents {
		agent, agentErr := agentToDomain(agentDto)
		if agentErr != nil {
			return nil, agentErr
		}
		agents = append(agents, agent)
	}

	return listing.RestoreListing(
		id, ownerAgencyID,
		dto.Title, dto.Description,
		dto.PriceCents,
		listing.Status(dto.Status),
		listing.ListingType(dto.ListingType),
		listing.PropertyType(dto.PropertyType),
		address,
		slug,
		mediaRefs,
		agents,
		kernel.RestoreRemoval(dto.DeletedAtUtc),
	)
}

func mediaRefToDomain(dto MediaRefDTO) (*listing.MediaRef, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	mediaAssetID, err := kernel.UUIDFromBytes(dto.MediaAssetID[:])
	if err != nil {
		return nil, err
	}

	return listing.RestoreMediaRef(
		id, mediaAssetID,
		listing.MediaRole(dto.Role),
		dto.SortOrder,
		dto.IsCover, dto.IsVisible,
	)
}

func agentToDomain(dto AgentSnapshotDTO) (*listing.AgentSnapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return listing.RestoreAgentSnapshot(
		id, agentID,
		dto.Name, dto.Email, dto.Phone,
		dto.IsPrimary,
		dto.SortOrder,
	)
}
