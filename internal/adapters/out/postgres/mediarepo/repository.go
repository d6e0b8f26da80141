package mediarepo

import (
	"context"
	"errors"
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/media"
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

// GormMediaAssetRepository implements MediaAssetRepository using GORM.
type GormMediaAssetRepository struct {
	db    *gorm.DB
	queue changeQueue
}

// NewGormMediaAssetRepository creates a new GORM media asset repository.
func NewGormMediaAssetRepository(db *gorm.DB, queue changeQueue) *GormMediaAssetRepository {
	return &GormMediaAssetRepository{
		db:    db,
		queue: queue,
	}
}

// Add queues the insert of a new media asset.
func (r *GormMediaAssetRepository) Add(_ context.Context, aggregate *media.MediaAsset) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	r.queue.Enqueue(aggregate.ID(), func(tx *gorm.DB, now time.Time) error {
		dto.CreatedAtUtc = now
		dto.UpdatedAtUtc = now
		dto.Version = 1
		if err := tx.Create(&dto).Error; err != nil {
			// two registrations can pass the dedup read concurrently;
			// the studio+checksum index decides the race
			if isUniqueViolation(err) {
				return errs.NewConflictError("checksumSha256", dto.ChecksumSha256)
			}
			return err
		}
		return nil
	})

	return nil
}

// Update queues the rewrite of an existing media asset with the optimistic
// version check. Variant rows are replaced wholesale.
func (r *GormMediaAssetRepository) Update(_ context.Context, aggregate *media.MediaAsset) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := r.queue.LoadedVersion(aggregate.ID())
	r.queue.Enqueue(aggregate.ID(), func(tx *gorm.DB, now time.Time) error {
		dto.UpdatedAtUtc = now
		dto.Version = expected + 1

		result := tx.Model(&MediaAssetDTO{}).
			Where("id = ? AND version = ?", dto.ID, expected).
			Select("*").
			Omit("id", "created_at_utc", "Variants").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConcurrencyConflictError("mediaAsset", dto.ID.String())
		}

		if err := tx.Where("asset_id = ?", dto.ID).Delete(&VariantDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Variants) > 0 {
			return tx.Create(&dto.Variants).Error
		}
		return nil
	})

	return nil
}

// Get retrieves a media asset by ID, excluding soft-deleted rows.
func (r *GormMediaAssetRepository) Get(ctx context.Context, id kernel.UUID) (*media.MediaAsset, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MediaAssetDTO
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("deleted_at_utc IS NULL").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mediaAsset", id.String())
		}
		return nil, err
	}

	r.queue.RememberVersion(id, dto.Version)
	return toDomain(dto)
}

// GetByChecksum retrieves a studio's asset by content checksum, excluding
// soft-deleted rows. Registration uses this for the dedup check.
func (r *GormMediaAssetRepository) GetByChecksum(ctx context.Context, studioID kernel.UUID, checksumSha256 string) (*media.MediaAsset, error) {
	if err := studioID.Validate(); err != nil {
		return nil, err
	}

	var dto MediaAssetDTO
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("owner_studio_id = ? AND checksum_sha256 = ? AND deleted_at_utc IS NULL",
			studioID.Bytes(), checksumSha256).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checksumSha256", checksumSha256)
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
