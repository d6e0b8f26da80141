package commands

import (
	"context"
)

// AssignPhotographerCommandHandler assigns or clears an order's
// photographer. The aggregate rejects the change on terminal orders.
type AssignPhotographerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignPhotographerCommandHandler creates a handler for photographer
// assignment.
func NewAssignPhotographerCommandHandler(uowFactory OrderUoWFactory) AssignPhotographerCommandHandler {
	return AssignPhotographerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the assignment or clears it when no
// photographer was given, and persists the change in one transaction.
func (h *AssignPhotographerCommandHandler) Handle(ctx context.Context, cmd AssignPhotographerCommand) error {
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

	repo := uow.ShootOrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if photographerID := cmd.PhotographerID(); photographerID != nil {
		err = aggregate.AssignPhotographer(*photographerID)
	} else {
		err = aggregate.UnassignPhotographer()
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
