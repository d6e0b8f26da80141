package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/pkg/guard"
)

var ErrAddShootTaskCommandIsNotConstructed = errors.New(
	"AddShootTaskCommand must be created via NewAddShootTaskCommand constructor",
)

// AddShootTaskCommand requests a new task on a shoot order: one or more
// combinable shoot types, optional notes and an optional price.
type AddShootTaskCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	taskID     kernel.UUID
	types      order.TaskTypes
	notes      string
	priceCents *int64

	guard guard.ConstructorGuard
}

// NewAddShootTaskCommand creates a command to add a task to an order.
// The type set must be non-empty; a price, when given, must be positive
// (enforced by the aggregate).
func NewAddShootTaskCommand(
	orderID, taskID kernel.UUID,
	types order.TaskTypes,
	notes string,
	priceCents *int64,
) (AddShootTaskCommand, error) {
	cmd := AddShootTaskCommand{
		notes:      notes,
		priceCents: priceCents,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTaskID(taskID),
		cmd.setTypes(types),
	); err != nil {
		return AddShootTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShootTaskCommand) Validate() error {
	return c.guard.Validate(ErrAddShootTaskCommandIsNotConstructed)
}

// OrderID returns the order to add the task to.
func (c AddShootTaskCommand) OrderID() kernel.UUID { return c.orderID }

// TaskID returns the identifier for the new task.
func (c AddShootTaskCommand) TaskID() kernel.UUID { return c.taskID }

// Types returns the combinable set of shoot types.
func (c AddShootTaskCommand) Types() order.TaskTypes { return c.types }

// Notes returns free-form instructions for the task.
func (c AddShootTaskCommand) Notes() string { return c.notes }

// PriceCents returns the agreed price in minor units, nil when not priced.
func (c AddShootTaskCommand) PriceCents() *int64 { return c.priceCents }

func (c *AddShootTaskCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AddShootTaskCommand) setTaskID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.taskID = id
	return nil
}

func (c *AddShootTaskCommand) setTypes(types order.TaskTypes) error {
	if err := types.Validate(); err != nil {
		return err
	}
	c.types = types
	return nil
}
