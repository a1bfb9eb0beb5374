package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root binding a client to an owned set of line items.
// The order exists fully formed from creation; it has no status lifecycle and
// is mutated only by client reassignment and wholesale item replacement.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must reference exactly one valid client
//   - Every owned item must be valid (see Item)
//
// Items are exclusively owned: replacing the item set discards the previous
// items entirely. Insertion order is preserved for presentation but carries no
// semantic meaning.
type Order struct {
	id       kernel.UUID
	clientID kernel.UUID
	items    []Item

	isConstructed bool
}

// NewOrder creates a new Order bound to the given client with the given items.
// The items slice may be empty; every item present must have been created via
// NewItem.
func NewOrder(id kernel.UUID, clientID kernel.UUID, items []Item) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(id kernel.UUID, clientID kernel.UUID, items []Item) (*Order, error) {
	return NewOrder(id, clientID, items)
}

// Validate ensures the Order was constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the referenced client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Items returns a copy of the owned line items in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the derived order total: the sum of quantity times unit
// price over all items. It is computed on demand and never stored.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AssignClient reassigns the order to another client.
func (o *Order) AssignClient(clientID kernel.UUID) error {
	return o.setClientID(clientID)
}

// ReplaceItems substitutes the complete item set. The previous items are
// discarded; an empty slice clears the order. This is full replacement, not a
// merge.
func (o *Order) ReplaceItems(items []Item) error {
	return o.setItems(items)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
