package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles the business logic for partial order
// updates. An omitted field leaves the stored value untouched; a provided
// item set, empty included, replaces the stored set wholesale.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	items := []OrderItemArgument{item}
//	cmd, _ := NewUpdateOrderCommand(orderID, nil, &items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order update failed: %w", err)
//	}
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
// Requires a UoWFactory spanning order, client, and product repositories.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command. The order lookup, reference
// resolution, and the item replacement all run inside one transaction, so no
// reader ever observes a half-replaced item set. An unknown order ID surfaces
// as not-found; a dangling client or product reference as a validation error.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if clientID, ok := cmd.ClientID(); ok {
		if err = resolveClient(ctx, uow, clientID); err != nil {
			return err
		}
		if err = existingOrder.AssignClient(clientID); err != nil {
			return err
		}
	}

	if args, ok := cmd.Items(); ok {
		items, resolveErr := resolveItems(ctx, uow, args)
		if resolveErr != nil {
			return resolveErr
		}
		if err = existingOrder.ReplaceItems(items); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
