package queries

import (
	"context"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShootOrdersQueryHandler reads in-flight shoot orders straight
// from the database, bypassing the aggregate and the unit of work.
type GetActiveShootOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShootOrdersQueryHandler creates a handler for active order
// queries. Requires a GORM database connection for query execution.
func NewGetActiveShootOrdersQueryHandler(db *gorm.DB) GetActiveShootOrdersQueryHandler {
	return GetActiveShootOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order that has not reached a
// terminal status. Results are sorted by order ID for consistent output.
func (h GetActiveShootOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShootOrdersQuery,
) ([]GetActiveShootOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveShootOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			agency_id,
			listing_id,
			status,
			currency
		FROM shoot_orders
		WHERE status NOT IN (?, ?)
		  AND deleted_at_utc IS NULL
		ORDER BY id
	`, int(order.Completed), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveShootOrdersQueryResponse
		var id, agencyID, listingID uuid.UUID
		var status int
		var currency string

		err = rows.Scan(
			&id,
			&agencyID,
			&listingID,
			&status,
			&currency,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderAgencyID, idErr := kernel.UUIDFromBytes(agencyID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.AgencyID = orderAgencyID

		orderListingID, idErr := kernel.UUIDFromBytes(listingID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ListingID = orderListingID

		orderResp.Status = order.Status(status)
		orderResp.Currency = currency
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
