// Package ports defines the persistence contracts between the application core
// and the storage adapters.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/client"
	"ordering/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
// Clients are immutable after creation, so the contract has no update method.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no client exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
