package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"coffeemachine/internal/adapters/out/postgres/orderrepo"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockChangeTracker is a mock implementation of the changeTracker interface.
type MockChangeTracker struct {
	mock.Mock
}

func (m *MockChangeTracker) TrackChange(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockChangeTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockChangeTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(850)

	suite.tracker.On("TrackChange", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(850)

	suite.tracker.On("TrackChange", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	duplicate, err := order.RestoreOrder(testOrder.ID(), testOrder.CoffeeID(), testOrder.Price())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err, "Adding an order with a duplicate ID should fail")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_RoundTrip() {
	ctx := context.Background()

	order1 := suite.createTestOrder(850)
	order2 := suite.createTestOrder(500)

	suite.tracker.On("TrackChange", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, order1))
	suite.Require().NoError(suite.repository.Add(ctx, order2))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	byID := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID().String()] = o
	}

	retrieved1, ok := byID[order1.ID().String()]
	suite.Require().True(ok)
	suite.True(order1.CoffeeID().IsEqual(retrieved1.CoffeeID()))
	suite.Equal(int64(850), retrieved1.Price().Amount())

	retrieved2, ok := byID[order2.ID().String()]
	suite.Require().True(ok)
	suite.Equal(int64(500), retrieved2.Price().Amount())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_Empty() {
	ctx := context.Background()

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

// createTestOrder creates a valid vend event for testing purposes.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(price int64) *order.Order {
	money, err := kernel.NewMoney(price)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), money)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
