package commands

import (
	"context"

	"shootdesk/internal/core/domain/model/order"
)

// PlaceShootOrderCommandHandler handles the business logic for placing
// shoot orders. New orders start in Placed status with no tasks.
type PlaceShootOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceShootOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceShootOrderCommandHandler(uowFactory OrderUoWFactory) PlaceShootOrderCommandHandler {
	return PlaceShootOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Uses a transaction to ensure the order is persisted or rolled back on error.
func (h *PlaceShootOrderCommandHandler) Handle(ctx context.Context, cmd PlaceShootOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.Place(
		cmd.OrderID(), cmd.AgencyID(), cmd.StudioID(), cmd.ListingID(), cmd.CreatedBy(),
		cmd.Currency(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShootOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
