// Package client provides the Client aggregate for the ordering system.
// Clients are created through the API and immutable afterwards; orders
// reference them by ID.
package client

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not created
// through the NewClient or RestoreClient factory methods.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client represents a customer that places orders.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name and phone are required
//   - Email is optional and may be empty
//   - Immutable after creation (the API exposes no client update)
type Client struct {
	id    kernel.UUID
	name  string
	phone string
	email string

	isConstructed bool
}

// NewClient creates a validated Client instance.
// Name and phone must be non-empty; email may be empty.
func NewClient(id kernel.UUID, name string, phone string, email string) (*Client, error) {
	c := &Client{
		email:         email,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistence without revalidating
// business rules beyond construction integrity.
func RestoreClient(id kernel.UUID, name string, phone string, email string) (*Client, error) {
	return NewClient(id, name, phone, email)
}

// Validate ensures the Client was constructed through a factory method.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by identity.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Phone returns the client's contact phone number.
func (c *Client) Phone() string {
	return c.phone
}

// Email returns the client's email address, empty when not provided.
func (c *Client) Email() string {
	return c.email
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
