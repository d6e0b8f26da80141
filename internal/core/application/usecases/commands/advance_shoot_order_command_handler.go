package commands

import (
	"context"
)

// AdvanceShootOrderCommandHandler moves an order one step along its happy
// path. The aggregate rejects skips, backward moves, and terminal orders.
type AdvanceShootOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceShootOrderCommandHandler creates a handler for order advancement.
func NewAdvanceShootOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceShootOrderCommandHandler {
	return AdvanceShootOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, advances it to the target status, and persists
// the change in one transaction.
func (h *AdvanceShootOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceShootOrderCommand) error {
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

	if err = aggregate.Advance(cmd.Target()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
