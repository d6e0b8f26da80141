package ports

import (
	"context"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing
// aggregates. Reads exclude soft-deleted rows unless stated otherwise.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing, including its
	// media references and agent snapshots.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing by its unique identifier, with owned
	// entities loaded.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetIncludingDeleted retrieves a listing regardless of its
	// soft-delete state. Used by the recovery flow.
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetBySlug retrieves a listing by its slug natural key within the
	// owning agency.
	GetBySlug(ctx context.Context, agencyID kernel.UUID, slug kernel.Slug) (*listing.Listing, error)
}
