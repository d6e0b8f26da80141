package ports

import (
	"context"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/media"
)

// MediaAssetRepository defines the persistence contract for media asset
// aggregates. Reads exclude soft-deleted rows.
type MediaAssetRepository interface {
	// Add persists a new media asset aggregate to storage.
	Add(ctx context.Context, aggregate *media.MediaAsset) error

	// Update persists changes to an existing asset, including its
	// variants.
	Update(ctx context.Context, aggregate *media.MediaAsset) error

	// Get retrieves an asset by its unique identifier, with variants
	// loaded.
	Get(ctx context.Context, id kernel.UUID) (*media.MediaAsset, error)

	// GetByChecksum retrieves the studio's asset carrying the given
	// SHA-256 digest. Used for upload deduplication; returns
	// ObjectNotFoundError when no such asset exists.
	GetByChecksum(ctx context.Context, studioID kernel.UUID, checksumSha256 string) (*media.MediaAsset, error)
}
