package http

import (
	"github.com/shopspring/decimal"
)

// Envelope is the uniform response wrapper: a human-readable message plus the
// payload. Error responses carry the message alone.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// CreateClientRequest is the payload for registering a client.
type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CreateProductRequest is the payload for registering a product.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
}

// OrderItemRequest is one requested line item: the product to reference, the
// quantity, and the unit price to snapshot on the order.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the payload for creating an order.
type CreateOrderRequest struct {
	ClientID string             `json:"client_id"`
	Items    []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest is the payload for partially updating an order. Both
// fields are pointers so an omitted field can be told apart from a provided
// one: a nil Items leaves the stored set untouched, while a present empty
// array deliberately clears it.
type UpdateOrderRequest struct {
	ClientID *string             `json:"client_id"`
	Items    *[]OrderItemRequest `json:"items"`
}
