package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateClientCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(id, "Ivan Petrov", "+79991234567", "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ClientID())
	assert.Equal(t, "Ivan Petrov", cmd.Name())
	assert.Equal(t, "+79991234567", cmd.Phone())
	assert.Equal(t, "ivan@example.com", cmd.Email())
}

func TestNewCreateClientCommand_EmptyEmailIsAllowed(t *testing.T) {
	cmd, err := commands.NewCreateClientCommand(kernel.NewUUID(), "Ivan Petrov", "+79991234567", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Email())
}

func TestNewCreateClientCommand_InvalidClientID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateClientCommand(invalidID, "Ivan Petrov", "+79991234567", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateClientCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateClientCommand(kernel.NewUUID(), "", "+79991234567", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateClientCommand_EmptyPhone(t *testing.T) {
	_, err := commands.NewCreateClientCommand(kernel.NewUUID(), "Ivan Petrov", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateClientCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CreateClientCommand{}
	require.Error(t, cmd.Validate())
}
