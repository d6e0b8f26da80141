package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/pkg/guard"
)

var ErrAdvanceShootOrderCommandIsNotConstructed = errors.New(
	"AdvanceShootOrderCommand must be created via NewAdvanceShootOrderCommand constructor",
)

// AdvanceShootOrderCommand requests one step along an order's happy path:
// accept, schedule, start, submit for delivery, request confirmation, or
// complete. The target names the status to reach.
type AdvanceShootOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceShootOrderCommand creates a command to advance a shoot order.
func NewAdvanceShootOrderCommand(orderID kernel.UUID, target order.Status) (AdvanceShootOrderCommand, error) {
	cmd := AdvanceShootOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceShootOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceShootOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShootOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceShootOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns the status the order should reach.
func (c AdvanceShootOrderCommand) Target() order.Status { return c.target }

func (c *AdvanceShootOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdvanceShootOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
