package queries_test

import (
	"context"
	"testing"

	"ordering/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ProductsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllProductsQueryHandler
}

func (suite *ProductsQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(suite.T())
	suite.handler = queries.NewGetAllProductsQueryHandler(suite.db)
}

func (suite *ProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, clients, products").Error
	suite.Require().NoError(err)
}

func (suite *ProductsQueryHandlerTestSuite) TestEmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllProductsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ProductsQueryHandlerTestSuite) TestReturnsAllInRegistrationOrder() {
	t := suite.T()
	first := seedProduct(t, suite.db, "Laptop", "25000.50")
	second := seedProduct(t, suite.db, "Mouse", "1500")

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllProductsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID().Bytes(), result[0].ID)
	suite.Equal("Laptop", result[0].Name)
	suite.True(result[0].BasePrice.Equal(decimal.RequireFromString("25000.50")))
	suite.Equal(second.ID().Bytes(), result[1].ID)
	suite.Equal("Mouse", result[1].Name)
	suite.True(result[1].BasePrice.Equal(decimal.RequireFromString("1500")))
}

func (suite *ProductsQueryHandlerTestSuite) TestInvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAllProductsQuery{})
	suite.Require().Error(err)
}

func TestProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductsQueryHandlerTestSuite))
}
