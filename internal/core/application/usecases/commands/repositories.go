// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"shootdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface that covers
// the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the shoot order repository
	// within a transaction.
	OrderRepoFactory interface {
		ShootOrderRepository() ports.ShootOrderRepository
	}

	// PackageRepoFactory provides access to the delivery package
	// repository within a transaction.
	PackageRepoFactory interface {
		DeliveryPackageRepository() ports.DeliveryPackageRepository
	}

	// ListingRepoFactory provides access to the listing repository
	// within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// MediaRepoFactory provides access to the media asset repository
	// within a transaction.
	MediaRepoFactory interface {
		MediaAssetRepository() ports.MediaAssetRepository
	}

	// OrderUoW manages transactions for shoot-order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new shoot order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PackageUoW manages transactions for delivery-package-only operations.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new delivery package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// ListingUoW manages transactions for listing-only operations.
	ListingUoW interface {
		TxManager
		ListingRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// MediaUoW manages transactions for media-asset-only operations.
	MediaUoW interface {
		TxManager
		MediaRepoFactory
	}

	// MediaUoWFactory creates new media asset unit of work instances.
	MediaUoWFactory interface {
		Create() MediaUoW
	}
)
