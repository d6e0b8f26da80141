package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrRegisterMediaAssetCommandIsNotConstructed = errors.New(
	"RegisterMediaAssetCommand must be created via NewRegisterMediaAssetCommand constructor",
)

// RegisterMediaAssetCommand registers an uploaded file as a media asset.
//
// Example:
//
//	cmd, err := NewRegisterMediaAssetCommand(
//	    assetID, studioID, "cloudinary", "sd/listings/abc123",
//	    media.Image, checksum, 2_048_000)
//	if err != nil {
//	    return fmt.Errorf("invalid upload: %w", err)
//	}
//
//	handler := NewRegisterMediaAssetCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register asset: %w", err)
//	}
//	// The asset is persisted and a processing job is on the queue.
type RegisterMediaAssetCommand struct { //nolint:recvcheck //using for validation
	assetID         kernel.UUID
	ownerStudioID   kernel.UUID
	provider        string
	providerAssetID string
	resourceType    media.ResourceType
	checksumSha256  string
	sizeBytes       int64

	guard guard.ConstructorGuard
}

// NewRegisterMediaAssetCommand creates a command to register an uploaded
// file. The checksum is optional; everything else is required and the
// size must be positive.
func NewRegisterMediaAssetCommand(
	assetID, ownerStudioID kernel.UUID,
	provider, providerAssetID string,
	resourceType media.ResourceType,
	checksumSha256 string,
	sizeBytes int64,
) (RegisterMediaAssetCommand, error) {
	cmd := RegisterMediaAssetCommand{
		checksumSha256: checksumSha256,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssetID(assetID),
		cmd.setOwnerStudioID(ownerStudioID),
		cmd.setProvider(provider),
		cmd.setProviderAssetID(providerAssetID),
		cmd.setResourceType(resourceType),
		cmd.setSizeBytes(sizeBytes),
	); err != nil {
		return RegisterMediaAssetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterMediaAssetCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMediaAssetCommandIsNotConstructed)
}

// AssetID returns the identifier for the new asset.
func (c RegisterMediaAssetCommand) AssetID() kernel.UUID { return c.assetID }

// OwnerStudioID returns the studio registering the upload.
func (c RegisterMediaAssetCommand) OwnerStudioID() kernel.UUID { return c.ownerStudioID }

// Provider returns the storage provider name.
func (c RegisterMediaAssetCommand) Provider() string { return c.provider }

// ProviderAssetID returns the provider's identifier for the file.
func (c RegisterMediaAssetCommand) ProviderAssetID() string { return c.providerAssetID }

// ResourceType returns what kind of file was uploaded.
func (c RegisterMediaAssetCommand) ResourceType() media.ResourceType { return c.resourceType }

// ChecksumSha256 returns the optional hex digest of the raw file.
func (c RegisterMediaAssetCommand) ChecksumSha256() string { return c.checksumSha256 }

// SizeBytes returns the raw file size in bytes.
func (c RegisterMediaAssetCommand) SizeBytes() int64 { return c.sizeBytes }

func (c *RegisterMediaAssetCommand) setAssetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assetID = id
	return nil
}

func (c *RegisterMediaAssetCommand) setOwnerStudioID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerStudioID = id
	return nil
}

func (c *RegisterMediaAssetCommand) setProvider(provider string) error {
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}
	c.provider = provider
	return nil
}

func (c *RegisterMediaAssetCommand) setProviderAssetID(providerAssetID string) error {
	if providerAssetID == "" {
		return errs.NewValueIsRequiredError("providerAssetId")
	}
	c.providerAssetID = providerAssetID
	return nil
}

func (c *RegisterMediaAssetCommand) setResourceType(resourceType media.ResourceType) error {
	if err := resourceType.Validate(); err != nil {
		return err
	}
	c.resourceType = resourceType
	return nil
}

func (c *RegisterMediaAssetCommand) setSizeBytes(sizeBytes int64) error {
	if sizeBytes <= 0 {
		return errs.NewValueIsInvalidError("sizeBytes")
	}
	c.sizeBytes = sizeBytes
	return nil
}
