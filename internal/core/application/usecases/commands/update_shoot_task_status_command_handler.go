package commands

import (
	"context"

	"shootdesk/internal/core/domain/model/order"
)

// UpdateShootTaskStatusCommandHandler changes a task's status through the
// owning order aggregate.
type UpdateShootTaskStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateShootTaskStatusCommandHandler creates a handler for task status
// updates.
func NewUpdateShootTaskStatusCommandHandler(uowFactory OrderUoWFactory) UpdateShootTaskStatusCommandHandler {
	return UpdateShootTaskStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, advances or cancels the task, and persists the
// change in one transaction.
func (h *UpdateShootTaskStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShootTaskStatusCommand) error {
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

	if cmd.Target() == order.TaskCancelled {
		err = aggregate.CancelTask(cmd.TaskID())
	} else {
		err = aggregate.AdvanceTask(cmd.TaskID(), cmd.Target())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
