package coffeerepo_test

import (
	"context"
	"testing"
	"time"

	"coffeemachine/internal/adapters/out/postgres/coffeerepo"
	"coffeemachine/internal/core/domain/model/coffee"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/errs"

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

// CoffeeRepositoryIntegrationTestSuite provides integration tests for the
// catalog repository using a PostgreSQL container.
type CoffeeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *coffeerepo.GormCoffeeRepository
	tracker    *MockChangeTracker
}

func (suite *CoffeeRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&coffeerepo.CoffeeDTO{}))
}

func (suite *CoffeeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE coffees").Error)

	suite.tracker = new(MockChangeTracker)
	suite.repository = coffeerepo.NewGormCoffeeRepository(suite.db, suite.tracker)
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestAdd_ValidCoffee_Success() {
	ctx := context.Background()
	latte := suite.createTestCoffee("Latte", 850)

	suite.tracker.On("TrackChange", latte.ID(), latte).Once()

	err := suite.repository.Add(ctx, latte)
	suite.Require().NoError(err)

	suite.assertCoffeeCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestAdd_DuplicateName_Fails() {
	ctx := context.Background()
	first := suite.createTestCoffee("Latte", 850)
	second := suite.createTestCoffee("Latte", 900)

	suite.tracker.On("TrackChange", first.ID(), first).Once()

	err := suite.repository.Add(ctx, first)
	suite.Require().NoError(err)

	// Catalog names are unique at the database level
	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertCoffeeCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestGet_ExistingCoffee_Success() {
	ctx := context.Background()
	latte := suite.createTestCoffee("Latte", 850)

	suite.tracker.On("TrackChange", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, latte))

	retrieved, err := suite.repository.Get(ctx, latte.ID())
	suite.Require().NoError(err)
	suite.True(latte.ID().IsEqual(retrieved.ID()))
	suite.Equal("Latte", retrieved.Name())
	suite.Equal(int64(850), retrieved.Price().Amount())
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestGet_NonExistentCoffee_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestGetByIDOrName_Matching() {
	ctx := context.Background()
	latte := suite.createTestCoffee("Latte", 850)
	espresso := suite.createTestCoffee("Espresso", 500)

	suite.tracker.On("TrackChange", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, latte))
	suite.Require().NoError(suite.repository.Add(ctx, espresso))

	// By ID only
	latteID := latte.ID()
	retrieved, err := suite.repository.GetByIDOrName(ctx, &latteID, "")
	suite.Require().NoError(err)
	suite.Equal("Latte", retrieved.Name())

	// By name only
	retrieved, err = suite.repository.GetByIDOrName(ctx, nil, "Espresso")
	suite.Require().NoError(err)
	suite.True(espresso.ID().IsEqual(retrieved.ID()))

	// ID matches even when the name does not
	retrieved, err = suite.repository.GetByIDOrName(ctx, &latteID, "No Such Coffee")
	suite.Require().NoError(err)
	suite.True(latte.ID().IsEqual(retrieved.ID()))

	// Name matches even when the ID does not
	unknownID := kernel.NewUUID()
	retrieved, err = suite.repository.GetByIDOrName(ctx, &unknownID, "Espresso")
	suite.Require().NoError(err)
	suite.Equal("Espresso", retrieved.Name())
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestGetByIDOrName_NoMatch_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByIDOrName(ctx, nil, "Phantom Roast")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestGetByIDOrName_NeitherProvided_Invalid() {
	ctx := context.Background()

	_, err := suite.repository.GetByIDOrName(ctx, nil, "")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestUpdate_ExistingCoffee_Success() {
	ctx := context.Background()
	latte := suite.createTestCoffee("Latte", 850)

	suite.tracker.On("TrackChange", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, latte))

	suite.Require().NoError(latte.Rename("Latte Grande"))
	newPrice, err := kernel.NewMoney(1000)
	suite.Require().NoError(err)
	suite.Require().NoError(latte.ChangePrice(newPrice))

	err = suite.repository.Update(ctx, latte)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, latte.ID())
	suite.Require().NoError(err)
	suite.Equal("Latte Grande", retrieved.Name())
	suite.Equal(int64(1000), retrieved.Price().Amount())
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestUpdate_NonExistentCoffee_NotFound() {
	ctx := context.Background()
	ghost := suite.createTestCoffee("Ghost", 700)

	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestDelete_ExistingCoffee_Success() {
	ctx := context.Background()
	latte := suite.createTestCoffee("Latte", 850)

	suite.tracker.On("TrackChange", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, latte))

	err := suite.repository.Delete(ctx, latte)
	suite.Require().NoError(err)

	suite.assertCoffeeCount(0)

	_, err = suite.repository.Get(ctx, latte.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestDelete_NonExistentCoffee_NotFound() {
	ctx := context.Background()
	ghost := suite.createTestCoffee("Ghost", 700)

	err := suite.repository.Delete(ctx, ghost)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()

	suite.tracker.On("TrackChange", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCoffee("Mocha", 1100)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCoffee("Americano", 600)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCoffee("Latte", 850)))

	coffees, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(coffees, 3)
	suite.Equal("Americano", coffees[0].Name())
	suite.Equal("Latte", coffees[1].Name())
	suite.Equal("Mocha", coffees[2].Name())
}

func (suite *CoffeeRepositoryIntegrationTestSuite) TestGetAll_EmptyCatalog() {
	ctx := context.Background()

	coffees, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(coffees)
}

// createTestCoffee creates a valid catalog entry for testing purposes.
func (suite *CoffeeRepositoryIntegrationTestSuite) createTestCoffee(name string, price int64) *coffee.Coffee {
	money, err := kernel.NewMoney(price)
	suite.Require().NoError(err)

	c, err := coffee.NewCoffee(kernel.NewUUID(), name, money)
	suite.Require().NoError(err)
	return c
}

// assertCoffeeCount verifies the number of catalog rows in the database.
func (suite *CoffeeRepositoryIntegrationTestSuite) assertCoffeeCount(expected int64) {
	var count int64
	err := suite.db.Model(&coffeerepo.CoffeeDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(expected, count)
}

func TestCoffeeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CoffeeRepositoryIntegrationTestSuite))
}
