package commands

import (
	"context"
)

// PublishDeliveryPackageCommandHandler releases a draft package. Once
// published the package's items and accesses are frozen.
type PublishDeliveryPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewPublishDeliveryPackageCommandHandler creates a handler for package
// publication.
func NewPublishDeliveryPackageCommandHandler(uowFactory PackageUoWFactory) PublishDeliveryPackageCommandHandler {
	return PublishDeliveryPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package, publishes it, and persists the change in one
// transaction.
func (h *PublishDeliveryPackageCommandHandler) Handle(ctx context.Context, cmd PublishDeliveryPackageCommand) error {
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

	if err = aggregate.Publish(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
