package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOrderItemArgumentIsNotConstructed = errors.New(
	"OrderItemArgument must be created via NewOrderItemArgument constructor",
)

// OrderItemArgument carries one requested line item for order create and
// update commands: the referenced product, the quantity, and the unit price
// to snapshot on the order.
type OrderItemArgument struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOrderItemArgument creates a validated line item argument.
// Quantity must be positive and price must not be negative.
func NewOrderItemArgument(
	productID kernel.UUID, quantity int, price decimal.Decimal,
) (OrderItemArgument, error) {
	itemArgument := OrderItemArgument{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemArgument.setProductID(productID),
		itemArgument.setQuantity(quantity),
		itemArgument.setPrice(price),
	); err != nil {
		return OrderItemArgument{}, err
	}

	return itemArgument, nil
}

// Validate ensures the argument was created through the constructor.
func (a OrderItemArgument) Validate() error {
	return a.guard.Validate(ErrOrderItemArgumentIsNotConstructed)
}

// ProductID returns the identifier of the referenced product.
func (a OrderItemArgument) ProductID() kernel.UUID {
	return a.productID
}

// Quantity returns the requested quantity.
func (a OrderItemArgument) Quantity() int {
	return a.quantity
}

// Price returns the unit price to snapshot on the order.
func (a OrderItemArgument) Price() decimal.Decimal {
	return a.price
}

func (a *OrderItemArgument) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product_id", err)
	}

	a.productID = productID
	return nil
}

func (a *OrderItemArgument) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	a.quantity = quantity
	return nil
}

func (a *OrderItemArgument) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	a.price = price
	return nil
}
