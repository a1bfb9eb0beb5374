package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Products are immutable after creation, so the contract has no update method.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no product exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
