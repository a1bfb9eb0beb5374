package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is stored as one consistency unit: the order row together with
// the complete set of owned item rows.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored item
	// set is replaced wholesale with the aggregate's current items: existing
	// item rows are deleted by owning order and the new set is inserted. The
	// caller is expected to run Update inside a unit of work so no reader
	// observes the intermediate state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	// Returns an errs.ObjectNotFoundError when no order exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
