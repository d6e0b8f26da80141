package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/pkg/guard"
)

var ErrUpdateShootTaskStatusCommandIsNotConstructed = errors.New(
	"UpdateShootTaskStatusCommand must be created via NewUpdateShootTaskStatusCommand constructor",
)

// UpdateShootTaskStatusCommand requests a task status change through the
// owning order: one step along the happy path, or cancellation when the
// target is TaskCancelled.
type UpdateShootTaskStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	taskID  kernel.UUID
	target  order.TaskStatus

	guard guard.ConstructorGuard
}

// NewUpdateShootTaskStatusCommand creates a command to move a task to the
// target status.
func NewUpdateShootTaskStatusCommand(
	orderID, taskID kernel.UUID,
	target order.TaskStatus,
) (UpdateShootTaskStatusCommand, error) {
	cmd := UpdateShootTaskStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTaskID(taskID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateShootTaskStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShootTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShootTaskStatusCommandIsNotConstructed)
}

// OrderID returns the order owning the task.
func (c UpdateShootTaskStatusCommand) OrderID() kernel.UUID { return c.orderID }

// TaskID returns the task to update.
func (c UpdateShootTaskStatusCommand) TaskID() kernel.UUID { return c.taskID }

// Target returns the status the task should reach.
func (c UpdateShootTaskStatusCommand) Target() order.TaskStatus { return c.target }

func (c *UpdateShootTaskStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateShootTaskStatusCommand) setTaskID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.taskID = id
	return nil
}

func (c *UpdateShootTaskStatusCommand) setTarget(target order.TaskStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
