package cmd

import (
	"log/slog"

	httpin "shootdesk/internal/adapters/in/http"
	"shootdesk/internal/adapters/out/backgroundjobs"
	"shootdesk/internal/adapters/out/notify"
	"shootdesk/internal/adapters/out/postgres"
	"shootdesk/internal/adapters/out/security"
	"shootdesk/internal/core/application/uploads"
	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/application/usecases/queries"
	"shootdesk/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     security.BcryptPasswordHasher
	dispatcher *backgroundjobs.InProcessDispatcher
	notifier   notify.SlogProgressNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     security.NewBcryptPasswordHasher(config.BcryptCost),
		dispatcher: backgroundjobs.NewInProcessDispatcher(logger),
		notifier:   notify.NewSlogProgressNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) listingUoWFactory() commands.ListingUoWFactory {
	return FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) mediaUoWFactory() commands.MediaUoWFactory {
	return FuncMediaUoWFactory(func() commands.MediaUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceShootOrderCommandHandler() commands.PlaceShootOrderCommandHandler {
	return commands.NewPlaceShootOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelShootOrderCommandHandler() commands.CancelShootOrderCommandHandler {
	return commands.NewCancelShootOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceShootOrderCommandHandler() commands.AdvanceShootOrderCommandHandler {
	return commands.NewAdvanceShootOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignPhotographerCommandHandler() commands.AssignPhotographerCommandHandler {
	return commands.NewAssignPhotographerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddShootTaskCommandHandler() commands.AddShootTaskCommandHandler {
	return commands.NewAddShootTaskCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShootTaskStatusCommandHandler() commands.UpdateShootTaskStatusCommandHandler {
	return commands.NewUpdateShootTaskStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	return commands.NewCreateListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateRemoveListingCommandHandler() commands.RemoveListingCommandHandler {
	return commands.NewRemoveListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateRestoreListingCommandHandler() commands.RestoreListingCommandHandler {
	return commands.NewRestoreListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateAttachListingMediaCommandHandler() commands.AttachListingMediaCommandHandler {
	return commands.NewAttachListingMediaCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateAssignListingAgentCommandHandler() commands.AssignListingAgentCommandHandler {
	return commands.NewAssignListingAgentCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateChangeListingStatusCommandHandler() commands.ChangeListingStatusCommandHandler {
	return commands.NewChangeListingStatusCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryPackageCommandHandler() commands.CreateDeliveryPackageCommandHandler {
	return commands.NewCreateDeliveryPackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateAddDeliveryItemCommandHandler() commands.AddDeliveryItemCommandHandler {
	return commands.NewAddDeliveryItemCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateReorderDeliveryItemsCommandHandler() commands.ReorderDeliveryItemsCommandHandler {
	return commands.NewReorderDeliveryItemsCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreatePublishDeliveryPackageCommandHandler() commands.PublishDeliveryPackageCommandHandler {
	return commands.NewPublishDeliveryPackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateRevokeDeliveryPackageCommandHandler() commands.RevokeDeliveryPackageCommandHandler {
	return commands.NewRevokeDeliveryPackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateGrantDeliveryAccessCommandHandler() commands.GrantDeliveryAccessCommandHandler {
	return commands.NewGrantDeliveryAccessCommandHandler(c.packageUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateRegisterDownloadCommandHandler() commands.RegisterDownloadCommandHandler {
	return commands.NewRegisterDownloadCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateExpireDeliveryPackagesCommandHandler() commands.ExpireDeliveryPackagesCommandHandler {
	return commands.NewExpireDeliveryPackagesCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateRegisterMediaAssetCommandHandler() commands.RegisterMediaAssetCommandHandler {
	return commands.NewRegisterMediaAssetCommandHandler(c.mediaUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAddMediaVariantCommandHandler() commands.AddMediaVariantCommandHandler {
	return commands.NewAddMediaVariantCommandHandler(c.mediaUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMediaProcessingCommandHandler() commands.UpdateMediaProcessingCommandHandler {
	return commands.NewUpdateMediaProcessingCommandHandler(c.mediaUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveShootOrdersQueryHandler() queries.GetActiveShootOrdersQueryHandler {
	return queries.NewGetActiveShootOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetListingsQueryHandler() queries.GetListingsQueryHandler {
	return queries.NewGetListingsQueryHandler(c.gormDB)
}

// CreateUploadSessionTracker wires the chunked upload tracker to media
// registration and the progress log.
func (c *CompositionRoot) CreateUploadSessionTracker() (*uploads.SessionTracker, error) {
	registrar := c.CreateRegisterMediaAssetCommandHandler()
	return uploads.NewSessionTracker(&registrar, c.notifier)
}

// JobDispatcher exposes the in-process dispatcher so main can register
// job handlers and close it on shutdown.
func (c *CompositionRoot) JobDispatcher() *backgroundjobs.InProcessDispatcher {
	return c.dispatcher
}

// CreateHTTPHandlers bundles everything the REST surface routes to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		PlaceShootOrder:       c.CreatePlaceShootOrderCommandHandler(),
		CancelShootOrder:      c.CreateCancelShootOrderCommandHandler(),
		AdvanceShootOrder:     c.CreateAdvanceShootOrderCommandHandler(),
		CreateListing:         c.CreateCreateListingCommandHandler(),
		RemoveListing:         c.CreateRemoveListingCommandHandler(),
		RestoreListing:        c.CreateRestoreListingCommandHandler(),
		CreateDeliveryPackage: c.CreateCreateDeliveryPackageCommandHandler(),
		PublishPackage:        c.CreatePublishDeliveryPackageCommandHandler(),
		GrantDeliveryAccess:   c.CreateGrantDeliveryAccessCommandHandler(),
		RegisterDownload:      c.CreateRegisterDownloadCommandHandler(),
		RegisterMediaAsset:    c.CreateRegisterMediaAssetCommandHandler(),
		GetActiveShootOrders:  c.CreateGetActiveShootOrdersQueryHandler(),
		GetListings:           c.CreateGetListingsQueryHandler(),
	}
}

// UnitOfWorkFactory exposes the shared factory for callers outside the
// command handlers, such as job handlers registered in main.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncMediaUoWFactory func() commands.MediaUoW

func (f FuncMediaUoWFactory) Create() commands.MediaUoW {
	return f()
}
