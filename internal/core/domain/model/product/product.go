// Package product provides the Product aggregate for the ordering system.
// Products carry a base price used as a reference; order items snapshot their
// own price at order time and do not track later product changes.
package product

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a sellable item.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name is required
//   - Description is optional and may be empty
//   - Base price must not be negative
//   - Immutable after creation (the API exposes no product update)
type Product struct {
	id          kernel.UUID
	name        string
	description string
	basePrice   decimal.Decimal

	isConstructed bool
}

// NewProduct creates a validated Product instance.
func NewProduct(id kernel.UUID, name string, description string, basePrice decimal.Decimal) (*Product, error) {
	p := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.UUID, name string, description string, basePrice decimal.Decimal) (*Product, error) {
	return NewProduct(id, name, description, basePrice)
}

// Validate ensures the Product was constructed through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's description, empty when not provided.
func (p *Product) Description() string {
	return p.description
}

// BasePrice returns the product's reference unit price.
func (p *Product) BasePrice() decimal.Decimal {
	return p.basePrice
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setBasePrice(basePrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("base_price",
			fmt.Errorf("%s is negative", basePrice))
	}
	p.basePrice = basePrice
	return nil
}
