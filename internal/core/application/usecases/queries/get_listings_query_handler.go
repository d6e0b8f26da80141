package queries

import (
	"context"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetListingsQueryHandler reads an agency's listings straight from the
// database, bypassing the aggregate and the unit of work.
type GetListingsQueryHandler struct {
	db *gorm.DB
}

// NewGetListingsQueryHandler creates a handler for listing queries.
// Requires a GORM database connection for query execution.
func NewGetListingsQueryHandler(db *gorm.DB) GetListingsQueryHandler {
	return GetListingsQueryHandler{db: db}
}

// Handle executes the query and returns the agency's listings sorted by
// slug. Soft deleted rows appear only when the query asked for them.
func (h GetListingsQueryHandler) Handle(
	ctx context.Context,
	query GetListingsQuery,
) ([]GetListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			slug,
			title,
			status,
			deleted_at_utc IS NOT NULL
		FROM listings
		WHERE owner_agency_id = ?
	`
	if !query.IncludeDeleted() {
		sql += ` AND deleted_at_utc IS NULL`
	}
	sql += ` ORDER BY slug`

	listings := make([]GetListingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, query.AgencyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var listingResp GetListingsQueryResponse
		var id uuid.UUID
		var slug, title string
		var status int
		var isDeleted bool

		err = rows.Scan(
			&id,
			&slug,
			&title,
			&status,
			&isDeleted,
		)
		if err != nil {
			return nil, err
		}

		listingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		listingResp.ID = listingID

		listingResp.Slug = slug
		listingResp.Title = title
		listingResp.Status = listing.Status(status)
		listingResp.IsDeleted = isDeleted
		listings = append(listings, listingResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
