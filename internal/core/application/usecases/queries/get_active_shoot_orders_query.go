package queries

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"

	"shootdesk/internal/pkg/guard"
)

var (
	ErrGetActiveShootOrdersQueryIsNotConstructed = errors.New(
		"GetActiveShootOrdersQuery must be created via NewGetActiveShootOrdersQuery constructor",
	)
)

// GetActiveShootOrdersQuery retrieves all shoot orders still moving through
// the workflow. Completed and cancelled orders are excluded, as are soft
// deleted rows.
//
// Example:
//
//	query := NewGetActiveShootOrdersQuery()
//	handler := NewGetActiveShootOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	for _, order := range orders {
//	    fmt.Printf("Order %s for listing %s: %s\n",
//	        order.ID, order.ListingID, order.Status)
//	}
type GetActiveShootOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveShootOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that spans all agencies.
func NewGetActiveShootOrdersQuery() GetActiveShootOrdersQuery {
	return GetActiveShootOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveShootOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveShootOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShootOrdersQueryIsNotConstructed)
}

// GetActiveShootOrdersQueryResponse is one in-flight order row. It carries
// what an operator dashboard needs without rehydrating the aggregate.
type GetActiveShootOrdersQueryResponse struct {
	ID        kernel.UUID
	AgencyID  kernel.UUID
	ListingID kernel.UUID
	Status    order.Status
	Currency  string
}
