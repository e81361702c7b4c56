package queries_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAvailableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableOrdersQueryHandler
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAvailableOrdersQueryHandler(db)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) seedOrder(
	zone string,
	status order.Status,
	amount float64,
	placedAt time.Time,
) kernel.UUID {
	id := kernel.NewUUID()
	dto := orderrepo.OrderDTO{
		ID:            id.Bytes(),
		ZoneCode:      zone,
		TotalAmount:   amount,
		Status:        int(status),
		PaymentMethod: order.PaymentMethodCOD.String(),
		PaymentStatus: order.PaymentStatusPending.String(),
		PlacedAt:      placedAt,
		Version:       1,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	zone, err := kernel.NewZoneCode("560001")
	suite.Require().NoError(err)
	query, err := queries.NewGetAvailableOrdersQuery(zone)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_ReturnsPlacedOrdersOldestFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	newer := suite.seedOrder("560001", order.Placed, 250, base)
	older := suite.seedOrder("560001", order.Placed, 120, base.Add(-time.Hour))

	zone, err := kernel.NewZoneCode("560001")
	suite.Require().NoError(err)
	query, err := queries.NewGetAvailableOrdersQuery(zone)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].OrderID.IsEqual(older))
	suite.InDelta(120, result[0].TotalAmount, 0.001)
	suite.True(result[1].OrderID.IsEqual(newer))
	suite.InDelta(250, result[1].TotalAmount, 0.001)
	suite.Equal("COD", result[0].PaymentMethod)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_FiltersByZoneAndStatus() {
	now := time.Now().UTC()
	wanted := suite.seedOrder("560001", order.Placed, 250, now)
	suite.seedOrder("560002", order.Placed, 250, now)
	suite.seedOrder("560001", order.Assigned, 250, now)
	suite.seedOrder("560001", order.Cancelled, 250, now)

	zone, err := kernel.NewZoneCode("560001")
	suite.Require().NoError(err)
	query, err := queries.NewGetAvailableOrdersQuery(zone)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].OrderID.IsEqual(wanted))
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAvailableOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetAvailableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableOrdersQueryHandlerTestSuite))
}
