package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// changeQueue is the slice of the unit of work the repository talks to:
// queued writes plus the version bookkeeping for optimistic concurrency.
type changeQueue interface {
	Enqueue(id kernel.UUID, apply func(tx *gorm.DB, now time.Time) error)
	RememberVersion(id kernel.UUID, version int64)
	LoadedVersion(id kernel.UUID) int64
}

// GormDeliveryPackageRepository implements DeliveryPackageRepository using GORM.
type GormDeliveryPackageRepository struct {
	db    *gorm.DB
	queue changeQueue
}

// NewGormDeliveryPackageRepository creates a new GORM delivery package repository.
func NewGormDeliveryPackageRepository(db *gorm.DB, queue changeQueue) *GormDeliveryPackageRepository {
	return &GormDeliveryPackageRepository{
		db:    db,
		queue: queue,
	}
}

// Add queues the insert of a new delivery package.
func (r *GormDeliveryPackageRepository) Add(_ context.Context, aggregate *delivery.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	r.queue.Enqueue(aggregate.ID(), func(tx *gorm.DB, now time.Time) error {
		dto.CreatedAtUtc = now
		dto.UpdatedAtUtc = now
		dto.Version = 1
		return tx.Create(&dto).Error
	})

	return nil
}

// Update queues the rewrite of an existing delivery package with the
// optimistic version check. Item and access rows are replaced wholesale.
func (r *GormDeliveryPackageRepository) Update(_ context.Context, aggregate *delivery.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := r.queue.LoadedVersion(aggregate.ID())
	r.queue.Enqueue(aggregate.ID(), func(tx *gorm.DB, now time.Time) error {
		dto.UpdatedAtUtc = now
		dto.Version = expected + 1

		result := tx.Model(&PackageDTO{}).
			Where("id = ? AND version = ?", dto.ID, expected).
			Select("*").
			Omit("id", "created_at_utc", "Items", "Accesses").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConcurrencyConflictError("deliveryPackage", dto.ID.String())
		}

		if err := tx.Where("package_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Items) > 0 {
			if err := tx.Create(&dto.Items).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("package_id = ?", dto.ID).Delete(&AccessDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Accesses) > 0 {
			return tx.Create(&dto.Accesses).Error
		}
		return nil
	})

	return nil
}

// Get retrieves a delivery package by ID, excluding soft-deleted rows.
func (r *GormDeliveryPackageRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Accesses").
		Where("deleted_at_utc IS NULL").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPackage", id.String())
		}
		return nil, err
	}

	r.queue.RememberVersion(id, dto.Version)
	return toDomain(dto)
}

// GetAllExpirable retrieves every published package whose expiry deadline
// has elapsed, for the periodic sweep.
func (r *GormDeliveryPackageRepository) GetAllExpirable(ctx context.Context, now time.Time) ([]*delivery.Package, error) {
	var dtos []PackageDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Accesses").
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ? AND deleted_at_utc IS NULL",
			int(delivery.Published), now.UTC()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	packages := make([]*delivery.Package, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.queue.RememberVersion(aggregate.ID(), dto.Version)
		packages = append(packages, aggregate)
	}

	return packages, nil
}
