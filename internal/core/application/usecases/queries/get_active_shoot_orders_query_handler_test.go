package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shootdesk/internal/adapters/out/postgres"
	"shootdesk/internal/adapters/out/postgres/orderrepo"
	"shootdesk/internal/core/application/usecases/queries"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveShootOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveShootOrdersQueryHandler
	factory   ports.UnitOfWorkFactory
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TaskDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveShootOrdersQueryHandler(db)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shoot_orders, shoot_tasks").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) seedOrder(mutate func(*order.ShootOrder)) *order.ShootOrder {
	ctx := context.Background()

	currency, err := kernel.NewCurrency("AUD")
	suite.Require().NoError(err)
	aggregate, err := order.Place(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(),
		currency,
	)
	suite.Require().NoError(err)
	if mutate != nil {
		mutate(aggregate)
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShootOrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
	return aggregate
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyActiveOrders() {
	ctx := context.Background()
	placed := suite.seedOrder(nil)
	suite.seedOrder(func(o *order.ShootOrder) {
		suite.Require().NoError(o.Cancel("client pulled the campaign"))
	})

	responses, err := suite.handler.Handle(ctx, queries.NewGetActiveShootOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(responses, 1)
	suite.True(responses[0].ID.IsEqual(placed.ID()))
	suite.True(responses[0].ListingID.IsEqual(placed.ListingID()))
	suite.Equal(order.Placed, responses[0].Status)
	suite.Equal("AUD", responses[0].Currency)
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) TestHandle_SkipsSoftDeletedOrders() {
	ctx := context.Background()
	suite.seedOrder(func(o *order.ShootOrder) {
		o.SoftDelete(time.Now().UTC())
	})

	responses, err := suite.handler.Handle(ctx, queries.NewGetActiveShootOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(responses)
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	ctx := context.Background()

	responses, err := suite.handler.Handle(ctx, queries.NewGetActiveShootOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(responses)
}

func (suite *GetActiveShootOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	ctx := context.Background()

	_, err := suite.handler.Handle(ctx, queries.GetActiveShootOrdersQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetActiveShootOrdersQueryIsNotConstructed)
}

func TestGetActiveShootOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveShootOrdersQueryHandlerTestSuite))
}
