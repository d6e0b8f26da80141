package listingrepo

import (
	"context"
	"errors"
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// changeQueue is the slice of the unit of work the repository talks to:
// queued writes plus the version bookkeeping for optimistic concurrency.
type changeQueue interface {
	Enqueue(id kernel.UUID, apply func(tx *gorm.DB, now time.Time) error)
	RememberVersion(id kernel.UUID, version int64)
	LoadedVersion(id kernel.UUID) int64
}

// GormListingRepository implements ListingRepository using GORM.
type GormListingRepository struct {
	db    *gorm.DB
	queue changeQueue
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB, queue changeQueue) *GormListingRepository {
	return &GormListingRepository{
		db:    db,
		queue: queue,
	}
}

// Add queues the insert of a new listing.
func (r *GormListingRepository) Add(_ context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	r.queue.Enqueue(aggregate.ID(), func(tx *gorm.DB, now time.Time) error {
		dto.CreatedAtUtc = now
		dto.UpdatedAtUtc = now
		dto.Version = 1
		if err := tx.Create(&dto).Error; err != nil {
			// two creations can pass the slug dedup read concurrently;
			// the agency+slug index decides the race
			if isUniqueViolation(err) {
				return errs.NewConflictError("slug", dto.Slug)
			}
			return err
		}
		return nil
	})

	return nil
}

// Update queues the rewrite of an existing listing with the optimistic
// version check. Media refs and agent snapshots are replaced wholesale.
// Soft deletion and restoration both flow through here: the removal state
// travels in the DeletedAtUtc column.
func (r *GormListingRepository) Update(_ context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := r.queue.LoadedVersion(aggregate.ID())
	r.queue.Enqueue(aggregate.ID(), func(tx *gorm.DB, now time.Time) error {
		dto.UpdatedAtUtc = now
		dto.Version = expected + 1

		result := tx.Model(&ListingDTO{}).
			Where("id = ? AND version = ?", dto.ID, expected).
			Select("*").
			Omit("id", "created_at_utc", "MediaRefs", "Agents").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConcurrencyConflictError("listing", dto.ID.String())
		}

		if err := tx.Where("listing_id = ?", dto.ID).Delete(&MediaRefDTO{}).Error; err != nil {
			return err
		}
		if len(dto.MediaRefs) > 0 {
			if err := tx.Create(&dto.MediaRefs).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("listing_id = ?", dto.ID).Delete(&AgentSnapshotDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Agents) > 0 {
			return tx.Create(&dto.Agents).Error
		}
		return nil
	})

	return nil
}

// Get retrieves a listing by ID, excluding soft-deleted rows.
func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	return r.get(ctx, id, false)
}

// GetIncludingDeleted retrieves a listing by ID even when it is
// soft-deleted. Restore flows depend on this read.
func (r *GormListingRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	return r.get(ctx, id, true)
}

func (r *GormListingRepository) get(ctx context.Context, id kernel.UUID, includeDeleted bool) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("MediaRefs").
		Preload("Agents")
	if !includeDeleted {
		query = query.Where("deleted_at_utc IS NULL")
	}

	var dto ListingDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("listing", id.String())
		}
		return nil, err
	}

	r.queue.RememberVersion(id, dto.Version)
	return toDomain(dto)
}

// GetBySlug retrieves a listing by its slug within an agency, excluding
// soft-deleted rows. Used for the slug uniqueness check at creation.
func (r *GormListingRepository) GetBySlug(ctx context.Context, agencyID kernel.UUID, slug kernel.Slug) (*listing.Listing, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}
	if err := slug.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	err := r.db.WithContext(ctx).
		Preload("MediaRefs").
		Preload("Agents").
		Where("owner_agency_id = ? AND slug = ? AND deleted_at_utc IS NULL", agencyID.Bytes(), slug.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slug", slug.String())
		}
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	r.queue.RememberVersion(id, dto.Version)
	return toDomain(dto)
}
