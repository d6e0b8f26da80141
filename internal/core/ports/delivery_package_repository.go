package ports

import (
	"context"
	"time"

	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/kernel"
)

// DeliveryPackageRepository defines the persistence contract for delivery
// package aggregates. Reads exclude soft-deleted rows.
type DeliveryPackageRepository interface {
	// Add persists a new delivery package aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Package) error

	// Update persists changes to an existing package, including its
	// items and access grants.
	Update(ctx context.Context, aggregate *delivery.Package) error

	// Get retrieves a package by its unique identifier, with items and
	// access grants loaded.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Package, error)

	// GetAllExpirable retrieves every published package whose expiry
	// deadline elapsed at the given instant. Used by the expiry sweep.
	GetAllExpirable(ctx context.Context, now time.Time) ([]*delivery.Package, error)
}
