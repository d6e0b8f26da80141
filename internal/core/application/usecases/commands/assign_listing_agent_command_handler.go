package commands

import (
	"context"
)

// AssignListingAgentCommandHandler assigns an agent to a listing. The
// aggregate rejects duplicate agents and archived listings.
type AssignListingAgentCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewAssignListingAgentCommandHandler creates a handler for agent
// assignment.
func NewAssignListingAgentCommandHandler(uowFactory ListingUoWFactory) AssignListingAgentCommandHandler {
	return AssignListingAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the listing, captures the agent snapshot, and persists the
// change in one transaction.
func (h *AssignListingAgentCommandHandler) Handle(ctx context.Context, cmd AssignListingAgentCommand) error {
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

	repo := uow.ListingRepository()
	aggregate, err := repo.Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	_, err = aggregate.AssignAgent(
		cmd.SnapshotID(), cmd.AgentID(),
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.IsPrimary(),
	)
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
