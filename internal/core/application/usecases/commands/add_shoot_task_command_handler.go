package commands

import (
	"context"
)

// AddShootTaskCommandHandler adds a task to a shoot order. The aggregate
// rejects new tasks on terminal orders.
type AddShootTaskCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddShootTaskCommandHandler creates a handler for task addition.
func NewAddShootTaskCommandHandler(uowFactory OrderUoWFactory) AddShootTaskCommandHandler {
	return AddShootTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, adds the task through the aggregate, and
// persists the change in one transaction.
func (h *AddShootTaskCommandHandler) Handle(ctx context.Context, cmd AddShootTaskCommand) error {
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

	if _, err = aggregate.AddTask(cmd.TaskID(), cmd.Types(), cmd.Notes(), cmd.PriceCents()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
