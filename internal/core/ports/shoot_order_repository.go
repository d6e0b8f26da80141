package ports

import (
	"context"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
)

// ShootOrderRepository defines the persistence contract for shoot order
// aggregates. Reads exclude soft-deleted rows.
type ShootOrderRepository interface {
	// Add persists a new shoot order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.ShootOrder) error

	// Update persists changes to an existing shoot order aggregate,
	// including its owned tasks.
	Update(ctx context.Context, aggregate *order.ShootOrder) error

	// Get retrieves a shoot order aggregate by its unique identifier,
	// with its tasks loaded.
	Get(ctx context.Context, id kernel.UUID) (*order.ShootOrder, error)

	// GetAllActive retrieves every shoot order that is not in a terminal
	// status. Used by studio dashboards and the fulfillment workflow.
	GetAllActive(ctx context.Context) ([]*order.ShootOrder, error)
}
