package commands

import (
	"context"
)

// ExpireDeliveryPackagesCommandHandler expires every published package
// whose deadline elapsed. Expiry is explicit sweep-driven state, not
// derived at read time, so downstream consumers keep querying by status.
type ExpireDeliveryPackagesCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewExpireDeliveryPackagesCommandHandler creates a handler for the
// expiry sweep.
func NewExpireDeliveryPackagesCommandHandler(uowFactory PackageUoWFactory) ExpireDeliveryPackagesCommandHandler {
	return ExpireDeliveryPackagesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads every expirable package, expires it, and persists the
// whole sweep in one transaction.
func (h *ExpireDeliveryPackagesCommandHandler) Handle(ctx context.Context, cmd ExpireDeliveryPackagesCommand) error {
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
	expirable, err := repo.GetAllExpirable(ctx, cmd.Now())
	if err != nil {
		return err
	}

	for _, aggregate := range expirable {
		if err = aggregate.Expire(cmd.Now()); err != nil {
			return err
		}
		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
