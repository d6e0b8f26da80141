package commands

import (
	"context"
)

// AddDeliveryItemCommandHandler adds an item to a draft package. The
// aggregate rejects duplicate sort orders and non-draft packages.
type AddDeliveryItemCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewAddDeliveryItemCommandHandler creates a handler for item addition.
func NewAddDeliveryItemCommandHandler(uowFactory PackageUoWFactory) AddDeliveryItemCommandHandler {
	return AddDeliveryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package, adds the item, and persists the change in one
// transaction.
func (h *AddDeliveryItemCommandHandler) Handle(ctx context.Context, cmd AddDeliveryItemCommand) error {
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

	if _, err = aggregate.AddItem(cmd.ItemID(), cmd.MediaAssetID(), cmd.VariantName(), cmd.SortOrder()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
