package commands

import (
	"context"
)

// CancelShootOrderCommandHandler cancels a shoot order. The assigned
// photographer and existing tasks are left untouched so the record shows
// what was in flight when the order died.
type CancelShootOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelShootOrderCommandHandler creates a handler for order cancellation.
func NewCancelShootOrderCommandHandler(uowFactory OrderUoWFactory) CancelShootOrderCommandHandler {
	return CancelShootOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, cancels it with the given reason, and persists
// the change in one transaction.
func (h *CancelShootOrderCommandHandler) Handle(ctx context.Context, cmd CancelShootOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
