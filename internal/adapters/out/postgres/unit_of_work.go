// Package postgres provides the GORM-based Unit of Work and repository
// wiring for the persistence layer.
//
// Repositories do not write rows directly. Mutations are queued as pending
// changes; Commit opens the write phase, stamps the audit columns with a
// single timestamp for the whole batch, enforces the optimistic version
// check, and applies everything inside one transaction. Reads execute
// immediately against the open transaction so a handler always sees the
// rows it is about to change.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	repo := uow.ListingRepository()
//	aggregate, err := repo.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate aggregate ...
//	if err := repo.Update(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"time"

	"shootdesk/internal/adapters/out/postgres/deliveryrepo"
	"shootdesk/internal/adapters/out/postgres/listingrepo"
	"shootdesk/internal/adapters/out/postgres/mediarepo"
	"shootdesk/internal/adapters/out/postgres/orderrepo"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/ports"

	"gorm.io/gorm"
)

// pendingChange is one queued persistence effect. The apply func runs at
// commit time inside the open transaction, with the batch timestamp.
type pendingChange struct {
	id    kernel.UUID
	apply func(tx *gorm.DB, now time.Time) error
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state and pending-change queue.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		pending:  make([]pendingChange, 0),
		versions: make(map[kernel.UUID]int64),
	}
}

// GormUnitOfWork coordinates one database transaction. Repositories queue
// their writes here and record the row versions they loaded, so Commit can
// stamp CreatedAtUtc/UpdatedAtUtc deterministically and reject stale
// updates with a ConcurrencyConflictError.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	pending  []pendingChange
	versions map[kernel.UUID]int64
}

// Begin opens the transaction. A second call on the same instance is a
// no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit applies every pending change with a single UTC timestamp and
// finalizes the transaction. The first failing change aborts the batch and
// rolls everything back. After commit the instance cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	now := time.Now().UTC()
	for _, change := range uow.pending {
		if err := change.apply(uow.tx, now); err != nil {
			_ = uow.tx.Rollback().Error
			uow.tx = nil
			uow.pending = uow.pending[:0]
			return err
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.pending = uow.pending[:0]
	return err
}

// Rollback discards the transaction and every queued change.
// After rollback the instance cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.pending = uow.pending[:0]
	return err
}

// ShootOrderRepository returns the order repository bound to this unit of
// work. Reads use the open transaction; writes are queued for commit.
func (uow *GormUnitOfWork) ShootOrderRepository() ports.ShootOrderRepository {
	return orderrepo.NewGormShootOrderRepository(uow.conn(), uow)
}

// DeliveryPackageRepository returns the delivery package repository bound
// to this unit of work.
func (uow *GormUnitOfWork) DeliveryPackageRepository() ports.DeliveryPackageRepository {
	return deliveryrepo.NewGormDeliveryPackageRepository(uow.conn(), uow)
}

// ListingRepository returns the listing repository bound to this unit of
// work.
func (uow *GormUnitOfWork) ListingRepository() ports.ListingRepository {
	return listingrepo.NewGormListingRepository(uow.conn(), uow)
}

// MediaAssetRepository returns the media asset repository bound to this
// unit of work.
func (uow *GormUnitOfWork) MediaAssetRepository() ports.MediaAssetRepository {
	return mediarepo.NewGormMediaAssetRepository(uow.conn(), uow)
}

// Enqueue registers a persistence effect to run at commit time. Called by
// the repositories for every Add and Update.
func (uow *GormUnitOfWork) Enqueue(id kernel.UUID, apply func(tx *gorm.DB, now time.Time) error) {
	uow.pending = append(uow.pending, pendingChange{id: id, apply: apply})
}

// RememberVersion records the row version observed by a read. The matching
// Update uses it for the optimistic concurrency check.
func (uow *GormUnitOfWork) RememberVersion(id kernel.UUID, version int64) {
	uow.versions[id] = version
}

// LoadedVersion returns the version recorded for the aggregate, or zero
// when it was never read through this unit of work.
func (uow *GormUnitOfWork) LoadedVersion(id kernel.UUID) int64 {
	return uow.versions[id]
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
