package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves all product read models from the database.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products in registration order.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductReadModel, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			base_price
		FROM products
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productModel ProductReadModel
		if err = rows.Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.BasePrice,
		); err != nil {
			return nil, err
		}
		products = append(products, productModel)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
