package commands

import (
	"context"

	"ordering/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles the business logic for client registration.
//
// Example:
//
//	handler := NewCreateClientCommandHandler(uowFactory)
//	cmd, _ := NewCreateClientCommand(kernel.NewUUID(), "Ivan Petrov", "+79991234567", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("client creation failed: %w", err)
//	}
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration operations.
// Requires a ClientUoWFactory for transactional persistence.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client creation command.
// Uses transaction to ensure the client is properly persisted or rolled back on error.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	newClient, err := client.NewClient(cmd.ClientID(), cmd.Name(), cmd.Phone(), cmd.Email())
	if err != nil {
		return err
	}

	if err = clientRepo.Add(ctx, newClient); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
