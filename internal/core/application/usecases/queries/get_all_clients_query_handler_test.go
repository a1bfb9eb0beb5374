package queries_test

import (
	"context"
	"testing"

	"ordering/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ClientsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllClientsQueryHandler
}

func (suite *ClientsQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(suite.T())
	suite.handler = queries.NewGetAllClientsQueryHandler(suite.db)
}

func (suite *ClientsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ClientsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, clients, products").Error
	suite.Require().NoError(err)
}

func (suite *ClientsQueryHandlerTestSuite) TestEmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllClientsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ClientsQueryHandlerTestSuite) TestReturnsAllInRegistrationOrder() {
	t := suite.T()
	first := seedClient(t, suite.db, "Ivan Petrov")
	second := seedClient(t, suite.db, "Anna Smirnova")

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllClientsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID().Bytes(), result[0].ID)
	suite.Equal("Ivan Petrov", result[0].Name)
	suite.Equal("+79991234567", result[0].Phone)
	suite.Equal(second.ID().Bytes(), result[1].ID)
	suite.Equal("Anna Smirnova", result[1].Name)
}

func (suite *ClientsQueryHandlerTestSuite) TestInvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAllClientsQuery{})
	suite.Require().Error(err)
}

func TestClientsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientsQueryHandlerTestSuite))
}
