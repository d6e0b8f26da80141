package commands

import (
	"context"
)

// RegisterDownloadCommandHandler counts a download against an access
// grant. The quota check and the increment happen inside the aggregate,
// and the optimistic version check on commit keeps concurrent downloads
// from slipping past the limit.
type RegisterDownloadCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewRegisterDownloadCommandHandler creates a handler for download
// registration.
func NewRegisterDownloadCommandHandler(uowFactory PackageUoWFactory) RegisterDownloadCommandHandler {
	return RegisterDownloadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package, registers the download, and persists the
// incremented counter in one transaction.
func (h *RegisterDownloadCommandHandler) Handle(ctx context.Context, cmd RegisterDownloadCommand) error {
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

	if err = aggregate.RegisterDownload(cmd.AccessID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
