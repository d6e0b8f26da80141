package commands

import (
	"context"
)

// RevokeDeliveryPackageCommandHandler withdraws a published package so
// recipients can no longer download from it.
type RevokeDeliveryPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewRevokeDeliveryPackageCommandHandler creates a handler for package
// revocation.
func NewRevokeDeliveryPackageCommandHandler(uowFactory PackageUoWFactory) RevokeDeliveryPackageCommandHandler {
	return RevokeDeliveryPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package, revokes it, and persists the change in one
// transaction.
func (h *RevokeDeliveryPackageCommandHandler) Handle(ctx context.Context, cmd RevokeDeliveryPackageCommand) error {
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

	repo := uow.DeliveryPackageRepository()
	aggregate, err := repo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = aggregate.Revoke(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
