package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Joins the client name and product names in and recomputes total_amount,
// which is never stored.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items.
// Returns an errs.ObjectNotFoundError when no order exists with the ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderModel OrderReadModel
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			c.name,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row().Scan(
		&orderModel.ID,
		&orderModel.ClientID,
		&orderModel.ClientName,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	items, total, err := loadOrderItems(ctx, h.db, orderModel.ID)
	if err != nil {
		return nil, err
	}
	orderModel.Items = items
	orderModel.TotalAmount = total

	return &orderModel, nil
}

// loadOrderItems reads the item rows of one order in submission order and
// sums quantity times price into the derived total.
func loadOrderItems(
	ctx context.Context, db *gorm.DB, orderID interface{},
) ([]OrderItemReadModel, decimal.Decimal, error) {
	items := make([]OrderItemReadModel, 0)
	total := decimal.Zero

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product_id,
			p.name,
			i.quantity,
			i.price
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.position
	`, orderID).Rows()
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemReadModel
		if err = rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return nil, decimal.Zero, err
		}

		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	return items, total, nil
}
