package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order. Both
// the client reference and the item set are optional: a nil clientID leaves
// the client untouched, a nil items pointer leaves the item set untouched.
// A non-nil empty items slice is a deliberate clear, it replaces the stored
// set with nothing. Distinguishing "provided but empty" from "omitted" is the
// whole point of the pointer.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	clientID  kernel.UUID
	hasClient bool

	items    []OrderItemArgument
	hasItems bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// clientID and items are optional; nil means the field was omitted.
func NewUpdateOrderCommand(
	orderID kernel.UUID, clientID *kernel.UUID, items *[]OrderItemArgument,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the new client reference and whether one was provided.
func (c UpdateOrderCommand) ClientID() (kernel.UUID, bool) {
	return c.clientID, c.hasClient
}

// Items returns the replacement item set and whether one was provided.
// The returned slice may be empty while ok is true: that clears the order.
func (c UpdateOrderCommand) Items() ([]OrderItemArgument, bool) {
	if !c.hasItems {
		return nil, false
	}

	items := make([]OrderItemArgument, len(c.items))
	copy(items, c.items)
	return items, true
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setClientID(clientID *kernel.UUID) error {
	if clientID == nil {
		return nil
	}

	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client_id", err)
	}

	c.clientID = *clientID
	c.hasClient = true
	return nil
}

func (c *UpdateOrderCommand) setItems(items *[]OrderItemArgument) error {
	if items == nil {
		return nil
	}

	for _, item := range *items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]OrderItemArgument, len(*items))
	copy(c.items, *items)
	c.hasItems = true
	return nil
}
