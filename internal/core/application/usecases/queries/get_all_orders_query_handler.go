package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all order read models from the database.
// Orders come back in creation order; each carries its items in submission
// order and a freshly computed total_amount.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their items.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderReadModel, 0)
	indexByID := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			c.name,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		ORDER BY o.created_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderModel OrderReadModel
		if err = rows.Scan(
			&orderModel.ID,
			&orderModel.ClientID,
			&orderModel.ClientName,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		); err != nil {
			return nil, err
		}

		orderModel.Items = make([]OrderItemReadModel, 0)
		orderModel.TotalAmount = decimal.Zero
		indexByID[orderModel.ID] = len(orders)
		orders = append(orders, orderModel)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, indexByID); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads every item row in one pass and distributes them onto the
// orders, accumulating each order's total as it goes.
func (h GetAllOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []OrderReadModel,
	indexByID map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.id,
			i.product_id,
			p.name,
			i.quantity,
			i.price
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		ORDER BY i.order_id, i.position
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemReadModel
		if err = rows.Scan(
			&orderID,
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return err
		}

		idx, ok := indexByID[orderID]
		if !ok {
			continue
		}

		orders[idx].Items = append(orders[idx].Items, item)
		orders[idx].TotalAmount = orders[idx].TotalAmount.
			Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return rows.Err()
}
