package commands

import (
	"context"

	"shootdesk/internal/core/ports"
)

// GrantDeliveryAccessCommandHandler grants access to a draft package,
// hashing the plaintext password before it reaches the aggregate.
type GrantDeliveryAccessCommandHandler struct {
	uowFactory PackageUoWFactory
	hasher     ports.PasswordHasher
}

// NewGrantDeliveryAccessCommandHandler creates a handler for access grants.
func NewGrantDeliveryAccessCommandHandler(
	uowFactory PackageUoWFactory,
	hasher ports.PasswordHasher,
) GrantDeliveryAccessCommandHandler {
	return GrantDeliveryAccessCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle loads the package, grants the access with the hashed password,
// and persists the change in one transaction.
func (h *GrantDeliveryAccessCommandHandler) Handle(ctx context.Context, cmd GrantDeliveryAccessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash := ""
	if cmd.Password() != "" {
		hash, err := h.hasher.Hash(cmd.Password())
		if err != nil {
			return err
		}
		passwordHash = hash
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryPackageRepository()
	aggregate, err := repo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	_, err = aggregate.GrantAccess(
		cmd.AccessID(), cmd.AccessType(),
		cmd.RecipientEmail(), cmd.RecipientName(),
		cmd.MaxDownloads(), passwordHash,
	)
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
