package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shootdesk/internal/adapters/out/postgres"
	"shootdesk/internal/adapters/out/postgres/deliveryrepo"
	"shootdesk/internal/adapters/out/postgres/listingrepo"
	"shootdesk/internal/adapters/out/postgres/mediarepo"
	"shootdesk/internal/adapters/out/postgres/orderrepo"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/core/ports"
	"shootdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the pending-change queue, audit
// stamping, optimistic concurrency and soft-delete filtering against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.TaskDTO{},
		&deliveryrepo.PackageDTO{}, &deliveryrepo.ItemDTO{}, &deliveryrepo.AccessDTO{},
		&listingrepo.ListingDTO{}, &listingrepo.MediaRefDTO{}, &listingrepo.AgentSnapshotDTO{},
		&mediarepo.MediaAssetDTO{}, &mediarepo.VariantDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shoot_orders, shoot_tasks, delivery_packages, delivery_items, " +
			"delivery_accesses, listings, listing_media_refs, listing_agents, media_assets, media_variants",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.ShootOrder {
	currency, err := kernel.NewCurrency("AUD")
	suite.Require().NoError(err)
	aggregate, err := order.Place(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		currency,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) newListing(title string) *listing.Listing {
	address, err := kernel.NewAddress(
		"12 Seaview Parade", "", "Cronulla", "Sydney", "NSW", "2230", "AU",
		nil, nil,
	)
	suite.Require().NoError(err)
	aggregate, err := listing.NewListing(
		kernel.NewUUID(), kernel.NewUUID(),
		title, "A place to live.", nil,
		listing.ForSale, listing.House, address,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndStampsAudit() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShootOrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	var dto orderrepo.OrderDTO
	err := suite.db.First(&dto, "id = ?", aggregate.ID().Bytes()).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), dto.Version)
	suite.False(dto.CreatedAtUtc.IsZero())
	suite.Equal(dto.CreatedAtUtc, dto.UpdatedAtUtc)
	suite.Nil(dto.DeletedAtUtc)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsQueuedChanges() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShootOrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdate_BumpsVersionAndTouchesUpdatedAt() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShootOrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	time.Sleep(10 * time.Millisecond)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.ShootOrderRepository()
	loaded, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Advance(order.Accepted))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	var dto orderrepo.OrderDTO
	err = suite.db.First(&dto, "id = ?", aggregate.ID().Bytes()).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), dto.Version)
	suite.Equal(int(order.Accepted), dto.Status)
	suite.True(dto.UpdatedAtUtc.After(dto.CreatedAtUtc))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdate_StaleVersion_ConcurrencyConflict() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShootOrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	// Two units of work load the same row, then both try to write.
	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	firstRepo := first.ShootOrderRepository()
	firstLoaded, err := firstRepo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	secondRepo := second.ShootOrderRepository()
	secondLoaded, err := secondRepo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstLoaded.Advance(order.Accepted))
	suite.Require().NoError(firstRepo.Update(ctx, firstLoaded))
	suite.Require().NoError(first.Commit(ctx))

	suite.Require().NoError(secondLoaded.Cancel("double booked"))
	suite.Require().NoError(secondRepo.Update(ctx, secondLoaded))
	err = second.Commit(ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSoftDelete_HiddenFromDefaultReads() {
	ctx := context.Background()
	aggregate := suite.newListing("Ocean View Villa #3")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ListingRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.ListingRepository()
	loaded, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	loaded.SoftDelete(time.Now())
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	repo = uow.ListingRepository()

	_, err = repo.Get(ctx, aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	recovered, err := repo.GetIncludingDeleted(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(recovered.IsDeleted())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRestore_RoundTripsThroughUpdate() {
	ctx := context.Background()
	aggregate := suite.newListing("Garden Terrace 7")
	aggregate.SoftDelete(time.Now())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ListingRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.ListingRepository()
	loaded, err := repo.GetIncludingDeleted(ctx, aggregate.ID())
	suite.Require().NoError(err)
	loaded.Restore()
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	restored, err := uow.ListingRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsDeleted())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdate_ReplacesOwnedTaskRows() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	_, err := aggregate.AddTask(kernel.NewUUID(), order.TaskPhotography, "wide shots", nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShootOrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.ShootOrderRepository()
	loaded, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Tasks(), 1)
	_, err = loaded.AddTask(kernel.NewUUID(), order.TaskDrone, "drone pass", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	err = suite.db.Model(&orderrepo.TaskDTO{}).Where("order_id = ?", aggregate.ID().Bytes()).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
