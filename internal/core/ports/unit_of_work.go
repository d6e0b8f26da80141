package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control, tracks aggregate changes, and applies the audit
// and soft-delete transforms deterministically before commit: timestamps
// are stamped, requested deletes become soft-delete updates, and a stale
// row version fails the commit with ConcurrencyConflictError.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit applies the collected changes and commits the current
	// transaction. Returns error if no active transaction, a tracked
	// aggregate's row version is stale, or the commit itself fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and discards the
	// collected changes. Returns error if no active transaction or
	// rollback fails.
	Rollback(ctx context.Context) error

	// ShootOrderRepository returns a ShootOrderRepository bound to the
	// current transaction.
	ShootOrderRepository() ShootOrderRepository

	// DeliveryPackageRepository returns a DeliveryPackageRepository
	// bound to the current transaction.
	DeliveryPackageRepository() DeliveryPackageRepository

	// ListingRepository returns a ListingRepository bound to the
	// current transaction.
	ListingRepository() ListingRepository

	// MediaAssetRepository returns a MediaAssetRepository bound to the
	// current transaction.
	MediaAssetRepository() MediaAssetRepository
}
