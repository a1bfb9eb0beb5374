package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/clientrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/core/domain/model/client"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker; query tests only need seeded rows.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startPostgres spins up a PostgreSQL container with the full schema migrated.
func startPostgres(t *testing.T) (*postgres.PostgresContainer, *gorm.DB) {
	t.Helper()
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
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	require.NoError(t, err)

	return container, db
}

func seedClient(t *testing.T, db *gorm.DB, name string) *client.Client {
	t.Helper()
	seeded, err := client.NewClient(kernel.NewUUID(), name, "+79991234567", "")
	require.NoError(t, err)

	repo := clientrepo.NewGormClientRepository(db, &mockAggregateTracker{})
	require.NoError(t, repo.Add(context.Background(), seeded))
	return seeded
}

func seedProduct(t *testing.T, db *gorm.DB, name string, basePrice string) *product.Product {
	t.Helper()
	seeded, err := product.NewProduct(kernel.NewUUID(), name, "", decimal.RequireFromString(basePrice))
	require.NoError(t, err)

	repo := productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
	require.NoError(t, repo.Add(context.Background(), seeded))
	return seeded
}

func seedOrder(t *testing.T, db *gorm.DB, c *client.Client, items ...order.Item) *order.Order {
	t.Helper()
	seeded, err := order.NewOrder(kernel.NewUUID(), c.ID(), items)
	require.NoError(t, err)

	repo := orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	require.NoError(t, repo.Add(context.Background(), seeded))
	return seeded
}

func makeItem(t *testing.T, p *product.Product, quantity int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), p.ID(), quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}
