package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrAssignPhotographerCommandIsNotConstructed = errors.New(
	"AssignPhotographerCommand must be created via NewAssignPhotographerCommand constructor",
)

// AssignPhotographerCommand requests assignment of a studio photographer
// to a shoot order. A nil photographer clears the assignment.
type AssignPhotographerCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	photographerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPhotographerCommand creates a command to assign a photographer
// to an order. Pass a nil photographerID to unassign.
func NewAssignPhotographerCommand(orderID kernel.UUID, photographerID *kernel.UUID) (AssignPhotographerCommand, error) {
	cmd := AssignPhotographerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPhotographerID(photographerID),
	); err != nil {
		return AssignPhotographerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPhotographerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPhotographerCommandIsNotConstructed)
}

// OrderID returns the order to (un)assign.
func (c AssignPhotographerCommand) OrderID() kernel.UUID { return c.orderID }

// PhotographerID returns the photographer to assign, nil to unassign.
func (c AssignPhotographerCommand) PhotographerID() *kernel.UUID { return c.photographerID }

func (c *AssignPhotographerCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AssignPhotographerCommand) setPhotographerID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.photographerID = id
	return nil
}
