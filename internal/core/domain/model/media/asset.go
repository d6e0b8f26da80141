package media

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var (
	// ErrMediaAssetIsNotConstructed is returned when a MediaAsset was
	// created without the factory.
	ErrMediaAssetIsNotConstructed = errors.New(
		"media asset is not constructed, use media.NewMediaAsset")

	checksumPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

// MediaAsset is an uploaded file owned by a studio and tracked through the
// processing pipeline. It owns the ordered variants the pipeline produces.
//
// Invariants:
//   - (provider, providerAssetID) identifies the file at the storage provider
//   - the checksum, when present, deduplicates uploads inside the studio
//   - variant names are unique within the asset
type MediaAsset struct {
	kernel.Removal

	id              kernel.UUID
	ownerStudioID   kernel.UUID
	provider        string
	providerAssetID string
	resourceType    ResourceType
	processStatus   ProcessStatus
	checksumSha256  string
	sizeBytes       int64
	variants        []*Variant

	guard guard.ConstructorGuard
}

// NewMediaAsset registers an uploaded file in Uploaded status with no
// variants. The checksum is optional; when present it must be a lowercase
// hex SHA-256 digest (uppercase input is normalized).
func NewMediaAsset(
	id, ownerStudioID kernel.UUID,
	provider, providerAssetID string,
	resourceType ResourceType,
	checksumSha256 string,
	sizeBytes int64,
) (*MediaAsset, error) {
	asset := &MediaAsset{
		processStatus: Uploaded,
		variants:      make([]*Variant, 0),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		asset.setID(id),
		asset.setOwnerStudioID(ownerStudioID),
		asset.setProvider(provider),
		asset.setProviderAssetID(providerAssetID),
		asset.setResourceType(resourceType),
		asset.setChecksumSha256(checksumSha256),
		asset.setSizeBytes(sizeBytes),
	); err != nil {
		return nil, err
	}

	return asset, nil
}

// RestoreMediaAsset reconstructs an asset from persistence, bypassing
// transition rules but re-validating values and owned variants.
func RestoreMediaAsset(
	id, ownerStudioID kernel.UUID,
	provider, providerAssetID string,
	resourceType ResourceType,
	processStatus ProcessStatus,
	checksumSha256 string,
	sizeBytes int64,
	variants []*Variant,
	removal kernel.Removal,
) (*MediaAsset, error) {
	asset := &MediaAsset{
		Removal:  removal,
		variants: variants,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		asset.setID(id),
		asset.setOwnerStudioID(ownerStudioID),
		asset.setProvider(provider),
		asset.setProviderAssetID(providerAssetID),
		asset.setResourceType(resourceType),
		asset.setChecksumSha256(checksumSha256),
		asset.setSizeBytes(sizeBytes),
		processStatus.Validate(),
	); err != nil {
		return nil, err
	}

	for _, variant := range variants {
		if err := variant.Validate(); err != nil {
			return nil, err
		}
	}

	asset.processStatus = processStatus
	return asset, nil
}

// Validate ensures the MediaAsset was created through the factory.
func (m *MediaAsset) Validate() error {
	return m.guard.Validate(ErrMediaAssetIsNotConstructed)
}

// IsEqual compares two assets by identifier.
func (m *MediaAsset) IsEqual(other *MediaAsset) bool {
	return m.id.IsEqual(other.id)
}

// ID returns the asset identifier.
func (m *MediaAsset) ID() kernel.UUID { return m.id }

// OwnerStudioID returns the studio that owns the asset.
func (m *MediaAsset) OwnerStudioID() kernel.UUID { return m.ownerStudioID }

// Provider returns the storage provider name.
func (m *MediaAsset) Provider() string { return m.provider }

// ProviderAssetID returns the provider's identifier for the file.
func (m *MediaAsset) ProviderAssetID() string { return m.providerAssetID }

// ResourceType returns what kind of file the asset holds.
func (m *MediaAsset) ResourceType() ResourceType { return m.resourceType }

// ProcessStatus returns where the asset sits in the pipeline.
func (m *MediaAsset) ProcessStatus() ProcessStatus { return m.processStatus }

// ChecksumSha256 returns the hex digest of the raw file, empty when unknown.
func (m *MediaAsset) ChecksumSha256() string { return m.checksumSha256 }

// SizeBytes returns the raw file size in bytes.
func (m *MediaAsset) SizeBytes() int64 { return m.sizeBytes }

// Variants returns the renditions in production order.
func (m *MediaAsset) Variants() []*Variant {
	variants := make([]*Variant, len(m.variants))
	copy(variants, m.variants)
	return variants
}

// StartProcessing moves the asset from Uploaded to Processing.
func (m *MediaAsset) StartProcessing() error {
	newStatus, err := m.processStatus.StartProcessing()
	if err != nil {
		return err
	}
	m.processStatus = newStatus
	return nil
}

// CompleteProcessing moves the asset from Processing to Ready.
func (m *MediaAsset) CompleteProcessing() error {
	newStatus, err := m.processStatus.CompleteProcessing()
	if err != nil {
		return err
	}
	m.processStatus = newStatus
	return nil
}

// FailProcessing moves the asset from Processing to Failed.
func (m *MediaAsset) FailProcessing() error {
	newStatus, err := m.processStatus.FailProcessing()
	if err != nil {
		return err
	}
	m.processStatus = newStatus
	return nil
}

// AddVariant appends a rendition to the asset.
//
// Business rules:
//   - The variant name must be unique within the asset
//   - Variants are rejected once processing reached Failed
func (m *MediaAsset) AddVariant(
	variantID kernel.UUID,
	name, url string,
	width, height, bitrate *int,
	sizeBytes *int64,
) (*Variant, error) {
	if m.processStatus == Failed {
		return nil, errs.NewInvalidOperationErrorWithCause("add variant",
			fmt.Errorf("asset processing has failed"))
	}
	for _, existing := range m.variants {
		if existing.name == name {
			return nil, errs.NewConflictError("name", name)
		}
	}

	variant, err := newVariant(variantID, name, url, width, height, bitrate, sizeBytes)
	if err != nil {
		return nil, err
	}

	m.variants = append(m.variants, variant)
	return variant, nil
}

func (m *MediaAsset) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MediaAsset) setOwnerStudioID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.ownerStudioID = id
	return nil
}

func (m *MediaAsset) setProvider(provider string) error {
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}
	m.provider = provider
	return nil
}

func (m *MediaAsset) setProviderAssetID(providerAssetID string) error {
	if providerAssetID == "" {
		return errs.NewValueIsRequiredError("providerAssetId")
	}
	m.providerAssetID = providerAssetID
	return nil
}

func (m *MediaAsset) setResourceType(resourceType ResourceType) error {
	if err := resourceType.Validate(); err != nil {
		return err
	}
	m.resourceType = resourceType
	return nil
}

func (m *MediaAsset) setChecksumSha256(checksum string) error {
	if checksum == "" {
		return nil
	}
	normalized := strings.ToLower(checksum)
	if !checksumPattern.MatchString(normalized) {
		return errs.NewValueIsInvalidErrorWithCause("checksumSha256",
			fmt.Errorf("%q is not a hex sha-256 digest", checksum))
	}
	m.checksumSha256 = normalized
	return nil
}

func (m *MediaAsset) setSizeBytes(sizeBytes int64) error {
	if sizeBytes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sizeBytes",
			fmt.Errorf("%d is not greater than 0", sizeBytes))
	}
	m.sizeBytes = sizeBytes
	return nil
}
