// Package queries contains read-only operations over the storage. Implements
// the Query side of the CQRS architecture: raw SQL against the database,
// returning denormalized read models instead of domain aggregates.
package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderReadModel is the denormalized order representation returned by order
// queries: the owning client's name and each item's product name are joined
// in, and total_amount is recomputed from the items on every read.
type OrderReadModel struct {
	ID          uuid.UUID            `json:"id"`
	ClientID    uuid.UUID            `json:"client_id"`
	ClientName  string               `json:"client_name"`
	Items       []OrderItemReadModel `json:"items"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// OrderItemReadModel is one line item within an order read model.
type OrderItemReadModel struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// ClientReadModel is the client representation returned by client queries.
type ClientReadModel struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email,omitempty"`
}

// ProductReadModel is the product representation returned by product queries.
type ProductReadModel struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
}
