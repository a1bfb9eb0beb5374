package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the client and every referenced product before writing, so a
// dangling reference fails the whole create and nothing is persisted.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), clientID, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning order, client, and product repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The client lookup, product
// lookups, and the insert all run inside one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := resolveClient(ctx, uow, cmd.ClientID()); err != nil {
		return err
	}

	items, err := resolveItems(ctx, uow, cmd.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ClientID(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveClient verifies the referenced client exists. A missing client is a
// bad reference on the caller's side, so the not-found lookup result surfaces
// as a validation error rather than not-found.
func resolveClient(ctx context.Context, uow ClientRepoFactory, clientID kernel.UUID) error {
	if _, err := uow.ClientRepository().Get(ctx, clientID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("client_id", err)
		}
		return err
	}
	return nil
}

// resolveItems verifies every referenced product exists and builds the domain
// line items, assigning each a fresh identifier.
func resolveItems(ctx context.Context, uow ProductRepoFactory, args []OrderItemArgument) ([]order.Item, error) {
	items := make([]order.Item, 0, len(args))
	for _, arg := range args {
		if _, err := uow.ProductRepository().Get(ctx, arg.ProductID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewValueIsInvalidErrorWithCause("product_id", err)
			}
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), arg.ProductID(), arg.Quantity(), arg.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
