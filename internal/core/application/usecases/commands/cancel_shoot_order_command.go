package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrCancelShootOrderCommandIsNotConstructed = errors.New(
	"CancelShootOrderCommand must be created via NewCancelShootOrderCommand constructor",
)

// CancelShootOrderCommand requests cancellation of a shoot order with a
// mandatory reason. The aggregate rejects cancellation of terminal orders.
type CancelShootOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelShootOrderCommand creates a command to cancel a shoot order.
// The reason must be non-empty; its length is enforced by the aggregate.
func NewCancelShootOrderCommand(orderID kernel.UUID, reason string) (CancelShootOrderCommand, error) {
	cmd := CancelShootOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelShootOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShootOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelShootOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelShootOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns why the order is being cancelled.
func (c CancelShootOrderCommand) Reason() string { return c.reason }

func (c *CancelShootOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CancelShootOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
