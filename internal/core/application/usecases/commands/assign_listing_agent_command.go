package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

var ErrAssignListingAgentCommandIsNotConstructed = errors.New(
	"AssignListingAgentCommand must be created via NewAssignListingAgentCommand constructor",
)

// AssignListingAgentCommand captures an agent's contact details on a
// listing at assignment time.
type AssignListingAgentCommand struct { //nolint:recvcheck //using for validation
	listingID  kernel.UUID
	snapshotID kernel.UUID
	agentID    kernel.UUID
	name       string
	email      string
	phone      string
	isPrimary  bool

	guard guard.ConstructorGuard
}

// NewAssignListingAgentCommand creates a command to assign an agent to a
// listing. Name and email are required; the phone is optional.
func NewAssignListingAgentCommand(
	listingID, snapshotID, agentID kernel.UUID,
	name, email, phone string,
	isPrimary bool,
) (AssignListingAgentCommand, error) {
	cmd := AssignListingAgentCommand{
		phone:     phone,
		isPrimary: isPrimary,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setSnapshotID(snapshotID),
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return AssignListingAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignListingAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignListingAgentCommandIsNotConstructed)
}

// ListingID returns the listing to assign the agent to.
func (c AssignListingAgentCommand) ListingID() kernel.UUID { return c.listingID }

// SnapshotID returns the identifier for the new snapshot.
func (c AssignListingAgentCommand) SnapshotID() kernel.UUID { return c.snapshotID }

// AgentID returns the assigned agent.
func (c AssignListingAgentCommand) AgentID() kernel.UUID { return c.agentID }

// Name returns the agent's name.
func (c AssignListingAgentCommand) Name() string { return c.name }

// Email returns the agent's email.
func (c AssignListingAgentCommand) Email() string { return c.email }

// Phone returns the agent's phone.
func (c AssignListingAgentCommand) Phone() string { return c.phone }

// IsPrimary reports whether the agent becomes the lead contact.
func (c AssignListingAgentCommand) IsPrimary() bool { return c.isPrimary }

func (c *AssignListingAgentCommand) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.listingID = id
	return nil
}

func (c *AssignListingAgentCommand) setSnapshotID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.snapshotID = id
	return nil
}

func (c *AssignListingAgentCommand) setAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.agentID = id
	return nil
}

func (c *AssignListingAgentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AssignListingAgentCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
