// Package order provides domain entities and business logic for the order
// aggregate. It implements the Order aggregate root together with its owned
// Item entities.
//
// The package includes:
//   - Order: the aggregate root binding a client to a set of line items
//   - Item: a line item referencing a product with quantity and snapshot price
//
// Key business rules:
//   - An order always references exactly one valid client
//   - Every item belongs to exactly one order and references exactly one product
//   - Item quantity must be positive, item price must not be negative
//   - Items are replaced wholesale: an update either leaves the item set
//     untouched or substitutes the complete new set (an empty set clears all)
//   - The order total is derived as the sum of quantity times price over the
//     items; it is never stored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
