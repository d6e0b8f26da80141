package orderrepo

import (
	"context"
	"errors"
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
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

// GormShootOrderRepository implements ShootOrderRepository using GORM.
type GormShootOrderRepository struct {
	db    *gorm.DB
	queue changeQueue
}

// NewGormShootOrderRepository creates a new GORM shoot order repository.
func NewGormShootOrderRepository(db *gorm.DB, queue changeQueue) *GormShootOrderRepository {
	return &GormShootOrderRepository{
		db:    db,
		queue: queue,
	}
}

// Add queues the insert of a new shoot order. Audit columns are stamped at
// commit time; fresh rows start at version 1.
func (r *GormShootOrderRepository) Add(_ context.Context, aggregate *order.ShootOrder) error {
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

// Update queues the rewrite of an existing shoot order. The parent row is
// updated only if its version still matches the one read earlier in this
// unit of work; otherwise the commit fails with a ConcurrencyConflictError.
// Owned task rows are replaced wholesale.
func (r *GormShootOrderRepository) Update(_ context.Context, aggregate *order.ShootOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := r.queue.LoadedVersion(aggregate.ID())
	r.queue.Enqueue(aggregate.ID(), func(tx *gorm.DB, now time.Time) error {
		dto.UpdatedAtUtc = now
		dto.Version = expected + 1

		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", dto.ID, expected).
			Select("*").
			Omit("id", "created_at_utc", "Tasks").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConcurrencyConflictError("shootOrder", dto.ID.String())
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&TaskDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Tasks) > 0 {
			return tx.Create(&dto.Tasks).Error
		}
		return nil
	})

	return nil
}

// Get retrieves a shoot order by ID, excluding soft-deleted rows.
func (r *GormShootOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ShootOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("deleted_at_utc IS NULL").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shootOrder", id.String())
		}
		return nil, err
	}

	r.queue.RememberVersion(id, dto.Version)
	return toDomain(dto)
}

// GetAllActive retrieves every shoot order that has not reached a terminal
// status, excluding soft-deleted rows.
func (r *GormShootOrderRepository) GetAllActive(ctx context.Context) ([]*order.ShootOrder, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("status NOT IN ? AND deleted_at_utc IS NULL", []int{int(order.Completed), int(order.Cancelled)}).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.ShootOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.queue.RememberVersion(aggregate.ID(), dto.Version)
		orders = append(orders, aggregate)
	}

	return orders, nil
}
