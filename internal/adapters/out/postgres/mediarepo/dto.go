// Package mediarepo maps media asset aggregates to their database rows.
package mediarepo

import (
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/media"

	"github.com/google/uuid"
)

// MediaAssetDTO is the database row for a media asset aggregate. The
// checksum is unique per studio so the same bytes register only once.
type MediaAssetDTO struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OwnerStudioID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_media_assets_studio_checksum"`
	ChecksumSha256  string       `gorm:"type:char(64);not null;uniqueIndex:idx_media_assets_studio_checksum"`
	Provider        string       `gorm:"type:varchar(64);not null;uniqueIndex:idx_media_assets_provider_asset"`
	ProviderAssetID string       `gorm:"type:varchar(255);not null;uniqueIndex:idx_media_assets_provider_asset"`
	ResourceType    int          `gorm:"type:int;not null"`
	ProcessStatus   int          `gorm:"type:int;not null;index"`
	SizeBytes       int64        `gorm:"not null;check:size_bytes > 0"`
	Variants        []VariantDTO `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`

	CreatedAtUtc time.Time
	UpdatedAtUtc time.Time
	DeletedAtUtc *time.Time `gorm:"index"`
	Version      int64      `gorm:"not null"`
}

// TableName overrides GORM's default to "media_assets".
func (MediaAssetDTO) TableName() string {
	return "media_assets"
}

// VariantDTO is the database row for a rendition owned by a media asset.
type VariantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_media_variants_asset_name"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_media_variants_asset_name"`
	URL       string    `gorm:"type:varchar(2048);not null"`
	Width     *int
	Height    *int
	Bitrate   *int
	SizeBytes *int64
}

// TableName overrides GORM's default to "media_variants".
func (VariantDTO) TableName() string {
	return "media_variants"
}

// fromDomain converts a media asset aggregate to its database row.
func fromDomain(aggregate *media.MediaAsset) MediaAssetDTO {
	assetID := aggregate.ID().Bytes()

	variants := make([]VariantDTO, 0, len(aggregate.Variants()))
	for _, variant := range aggregate.Variants() {
		variants = append(variants, VariantDTO{
			ID:        variant.ID().Bytes(),
			AssetID:   assetID,
			Name:      variant.Name(),
			URL:       variant.URL(),
			Width:     variant.Width(),
			Height:    variant.Height(),
			Bitrate:   variant.Bitrate(),
			SizeBytes: variant.SizeBytes(),
		})
	}

	return MediaAssetDTO{
		ID:              assetID,
		OwnerStudioID:   aggregate.OwnerStudioID().Bytes(),
		ChecksumSha256:  aggregate.ChecksumSha256(),
		Provider:        aggregate.Provider(),
		ProviderAssetID: aggregate.ProviderAssetID(),
		ResourceType:    int(aggregate.ResourceType()),
		ProcessStatus:   int(aggregate.ProcessStatus()),
		SizeBytes:       aggregate.SizeBytes(),
		Variants:        variants,
		DeletedAtUtc:    aggregate.DeletedAt(),
	}
}

// toDomain rebuilds the media asset aggregate from its database row.
func toDomain(dto MediaAssetDTO) (*media.MediaAsset, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerStudioID, err := kernel.UUIDFromBytes(dto.OwnerStudioID[:])
	if err != nil {
		return nil, err
	}

	variants := make([]*media.Variant, 0, len(dto.Variants))
	for _, variantDto := range dto.Variants {
		variant, variantErr := variantToDomain(variantDto)
		if variantErr != nil {
			return nil, variantErr
		}
		variants = append(variants, variant)
	}

	return media.RestoreMediaAsset(
		id, ownerStudioID,
		dto.Provider, dto.ProviderAssetID,
		media.ResourceType(dto.ResourceType),
		media.ProcessStatus(dto.ProcessStatus),
		dto.ChecksumSha256,
		dto.SizeBytes,
		variants,
		kernel.RestoreRemoval(dto.DeletedAtUtc),
	)
}

func variantToDomain(dto VariantDTO) (*media.Variant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return media.RestoreVariant(
		id,
		dto.Name, dto.URL,
		dto.Width, dto.Height, dto.Bitrate,
		dto.SizeBytes,
	)
}
