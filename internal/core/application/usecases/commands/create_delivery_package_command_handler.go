package commands

import (
	"context"

	"shootdesk/internal/core/domain/model/delivery"
)

// CreateDeliveryPackageCommandHandler opens a draft delivery package.
type CreateDeliveryPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreateDeliveryPackageCommandHandler creates a handler for package
// creation.
func NewCreateDeliveryPackageCommandHandler(uowFactory PackageUoWFactory) CreateDeliveryPackageCommandHandler {
	return CreateDeliveryPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the draft package and persists it in one transaction.
func (h *CreateDeliveryPackageCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPackageCommand) error {
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

	aggregate, err := delivery.NewPackage(
		cmd.PackageID(), cmd.OrderID(), cmd.ListingID(),
		cmd.Title(), cmd.WatermarkEnabled(), cmd.ExpiresAt(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryPackageRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
