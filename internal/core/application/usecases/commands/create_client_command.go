package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client.
// Name and phone are required; email is optional contact information.
//
// Example:
//
//	clientID := kernel.NewUUID()
//	cmd, err := NewCreateClientCommand(clientID, "Ivan Petrov", "+79991234567", "ivan@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid client data: %w", err)
//	}
//
//	handler := NewCreateClientCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create client: %w", err)
//	}
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	phone    string
	email    string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
// Validates that client ID is valid and name and phone are not empty.
func NewCreateClientCommand(clientID kernel.UUID, name, phone, email string) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setName(name),
		clientCommand.setPhone(phone),
	); err != nil {
		return CreateClientCommand{}, err
	}

	clientCommand.email = email
	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the unique identifier for the client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the client's display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Phone returns the client's contact phone number.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

// Email returns the client's optional email address.
func (c CreateClientCommand) Email() string {
	return c.email
}

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateClientCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
