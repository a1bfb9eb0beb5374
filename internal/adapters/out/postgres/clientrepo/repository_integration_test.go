package clientrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/clientrepo"
	"ordering/internal/core/domain/model/client"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ClientRepositoryIntegrationTestSuite provides integration tests for ClientRepository
// using PostgreSQL containers to verify database persistence behavior.
type ClientRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *clientrepo.GormClientRepository
	tracker    *MockAggregateTracker
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&clientrepo.ClientDTO{}))
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE clients").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = clientrepo.NewGormClientRepository(suite.db, suite.tracker)
}

func (suite *ClientRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ClientRepositoryIntegrationTestSuite) TestAdd_ValidClient_Success() {
	ctx := context.Background()

	testClient := suite.createTestClient()
	suite.tracker.On("TrackAggregate", testClient.ID(), testClient).Once()

	err := suite.repository.Add(ctx, testClient)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&clientrepo.ClientDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGet_ExistingClient_ReturnsClient() {
	ctx := context.Background()

	testClient := suite.createTestClient()
	suite.tracker.On("TrackAggregate", testClient.ID(), testClient).Once()

	err := suite.repository.Add(ctx, testClient)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testClient.ID())
	suite.Require().NoError(err)

	suite.Equal(testClient.ID(), retrieved.ID())
	suite.Equal("Ivan Petrov", retrieved.Name())
	suite.Equal("+79991234567", retrieved.Phone())
	suite.Equal("ivan@example.com", retrieved.Email())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGet_NonExistentClient_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.UUID{})

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "required")

	suite.tracker.AssertExpectations(suite.T())
}

// createTestClient creates a basic test client with default values.
func (suite *ClientRepositoryIntegrationTestSuite) createTestClient() *client.Client {
	testClient, err := client.NewClient(kernel.NewUUID(), "Ivan Petrov", "+79991234567", "ivan@example.com")
	suite.Require().NoError(err)
	return testClient
}

func TestClientRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ClientRepositoryIntegrationTestSuite))
}
