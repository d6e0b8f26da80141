// Package deliveryrepo maps delivery package aggregates to their database rows.
package deliveryrepo

import (
	"time"

	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PackageDTO is the database row for a delivery package aggregate.
type PackageDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	ListingID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	Title            string      `gorm:"type:varchar(255);not null"`
	Status           int         `gorm:"type:int;not null;index"`
	WatermarkEnabled bool        `gorm:"not null"`
	ExpiresAt        *time.Time  `gorm:"index"`
	Items            []ItemDTO   `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Accesses         []AccessDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`

	CreatedAtUtc time.Time
	UpdatedAtUtc time.Time
	DeletedAtUtc *time.Time `gorm:"index"`
	Version      int64      `gorm:"not null"`
}

// TableName overrides GORM's default to "delivery_packages".
func (PackageDTO) TableName() string {
	return "delivery_packages"
}

// ItemDTO is the database row for one deliverable in a package.
type ItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MediaAssetID uuid.UUID `gorm:"type:uuid;not null;index"`
	VariantName  string    `gorm:"type:varchar(255);not null"`
	SortOrder    int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default to "delivery_items".
func (ItemDTO) TableName() string {
	return "delivery_items"
}

// AccessDTO is the database row for one access grant on a package.
type AccessDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AccessType     int       `gorm:"type:int;not null"`
	RecipientEmail string    `gorm:"type:varchar(255)"`
	RecipientName  string    `gorm:"type:varchar(255)"`
	MaxDownloads   *int
	Downloads      int    `gorm:"type:int;not null"`
	PasswordHash   string `gorm:"type:varchar(255)"`
}

// TableName overrides GORM's default to "delivery_accesses".
func (AccessDTO) TableName() string {
	return "delivery_accesses"
}

// fromDomain converts a delivery package aggregate to its database row.
func fromDomain(aggregate *delivery.Package) PackageDTO {
	packageID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:           item.ID().Bytes(),
			PackageID:    packageID,
			MediaAssetID: item.MediaAssetID().Bytes(),
			VariantName:  item.VariantName(),
			SortOrder:    item.SortOrder(),
		})
	}

	accesses := make([]AccessDTO, 0, len(aggregate.Accesses()))
	for _, access := range aggregate.Accesses() {
		accesses = append(accesses, AccessDTO{
			ID:             access.ID().Bytes(),
			PackageID:      packageID,
			AccessType:     int(access.Type()),
			RecipientEmail: access.RecipientEmail(),
			RecipientName:  access.RecipientName(),
			MaxDownloads:   access.MaxDownloads(),
			Downloads:      access.Downloads(),
			PasswordHash:   access.PasswordHash(),
		})
	}

	return PackageDTO{
		ID:               packageID,
		OrderID:          aggregate.OrderID().Bytes(),
		ListingID:        aggregate.ListingID().Bytes(),
		Title:            aggregate.Title(),
		Status:           int(aggregate.Status()),
		WatermarkEnabled: aggregate.WatermarkEnabled(),
		ExpiresAt:        aggregate.ExpiresAt(),
		Items:            items,
		Accesses:         accesses,
		DeletedAtUtc:     aggregate.DeletedAt(),
	}
}

// toDomain rebuilds the delivery package aggregate from its database row.
func toDomain(dto PackageDTO) (*delivery.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*delivery.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	accesses := make([]*delivery.Access, 0, len(dto.Accesses))
	for _, accessDto := range dto.Accesses {
		access, accessErr := accessToDomain(accessDto)
		if accessErr != nil {
			return nil, accessErr
		}
		accesses = append(accesses, access)
	}

	return delivery.RestorePackage(
		id, orderID, listingID,
		dto.Title,
		delivery.Status(dto.Status),
		dto.WatermarkEnabled,
		dto.ExpiresAt,
		items,
		accesses,
		kernel.RestoreRemoval(dto.DeletedAtUtc),
	)
}

func itemToDomain(dto ItemDTO) (*delivery.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	mediaAssetID, err := kernel.UUIDFromBytes(dto.MediaAssetID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreItem(id, mediaAssetID, dto.VariantName, dto.SortOrder)
}

func accessToDomain(dto AccessDTO) (*delivery.Access, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreAccess(
		id,
		delivery.AccessType(dto.AccessType),
		dto.RecipientEmail, dto.RecipientName,
		dto.MaxDownloads,
		dto.Downloads,
		dto.PasswordHash,
	)
}
