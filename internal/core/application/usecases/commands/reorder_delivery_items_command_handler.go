package commands

import (
	"context"
)

// ReorderDeliveryItemsCommandHandler rewrites a draft package's item
// order. The aggregate rejects non-draft packages and id sets that do not
// match the current items.
type ReorderDeliveryItemsCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewReorderDeliveryItemsCommandHandler creates a handler for item
// reordering.
func NewReorderDeliveryItemsCommandHandler(uowFactory PackageUoWFactory) ReorderDeliveryItemsCommandHandler {
	return ReorderDeliveryItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package, applies the new order, and persists the change
// in one transaction.
func (h *ReorderDeliveryItemsCommandHandler) Handle(ctx context.Context, cmd ReorderDeliveryItemsCommand) error {
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

	if err = aggregate.ReorderItems(cmd.OrderedIDs()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
