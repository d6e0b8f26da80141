package listing

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrAgentSnapshotIsNotConstructed is returned when an AgentSnapshot was
// created without the listing's factory.
var ErrAgentSnapshotIsNotConstructed = errors.New(
	"agent snapshot is not constructed, use listing.Listing to assign agents")

// AgentSnapshot freezes an agent's contact details at assignment time.
// The agent record may change afterwards; the listing keeps what was true
// when the agent took it on.
type AgentSnapshot struct {
	id        kernel.UUID
	agentID   kernel.UUID
	name      string
	email     string
	phone     string
	isPrimary bool
	sortOrder int

	guard guard.ConstructorGuard
}

// newAgentSnapshot constructs a snapshot. Only the owning listing calls this.
func newAgentSnapshot(
	id, agentID kernel.UUID,
	name, email, phone string,
	sortOrder int,
) (*AgentSnapshot, error) {
	snapshot := &AgentSnapshot{
		phone:     phone,
		sortOrder: sortOrder,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		snapshot.setID(id),
		snapshot.setAgentID(agentID),
		snapshot.setName(name),
		snapshot.setEmail(email),
	); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// RestoreAgentSnapshot reconstructs a snapshot from persistence.
func RestoreAgentSnapshot(
	id, agentID kernel.UUID,
	name, email, phone string,
	isPrimary bool,
	sortOrder int,
) (*AgentSnapshot, error) {
	snapshot, err := newAgentSnapshot(id, agentID, name, email, phone, sortOrder)
	if err != nil {
		return nil, err
	}
	snapshot.isPrimary = isPrimary
	return snapshot, nil
}

// Validate ensures the snapshot was created through the owning aggregate.
func (s *AgentSnapshot) Validate() error {
	return s.guard.Validate(ErrAgentSnapshotIsNotConstructed)
}

// ID returns the snapshot identifier.
func (s *AgentSnapshot) ID() kernel.UUID { return s.id }

// AgentID returns the assigned agent.
func (s *AgentSnapshot) AgentID() kernel.UUID { return s.agentID }

// Name returns the agent's name as captured at assignment.
func (s *AgentSnapshot) Name() string { return s.name }

// Email returns the agent's email as captured at assignment.
func (s *AgentSnapshot) Email() string { return s.email }

// Phone returns the agent's phone as captured at assignment.
func (s *AgentSnapshot) Phone() string { return s.phone }

// IsPrimary reports whether the agent is the listing's lead contact.
func (s *AgentSnapshot) IsPrimary() bool { return s.isPrimary }

// SortOrder returns the display position within the listing.
func (s *AgentSnapshot) SortOrder() int { return s.sortOrder }

func (s *AgentSnapshot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *AgentSnapshot) setAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.agentID = id
	return nil
}

func (s *AgentSnapshot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *AgentSnapshot) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	s.email = email
	return nil
}
