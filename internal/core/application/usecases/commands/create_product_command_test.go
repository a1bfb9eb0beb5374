package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	price := decimal.RequireFromString("25000.50")
	cmd, err := commands.NewCreateProductCommand(id, "Laptop", "15-inch workstation", price)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, "Laptop", cmd.Name())
	assert.Equal(t, "15-inch workstation", cmd.Description())
	assert.True(t, cmd.BasePrice().Equal(price))
}

func TestNewCreateProductCommand_ZeroBasePriceIsAllowed(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Sample", "", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, cmd.BasePrice().IsZero())
}

func TestNewCreateProductCommand_NegativeBasePrice(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Laptop", "", decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateProductCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "", "", decimal.NewFromInt(100))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.UUID{}, "Laptop", "", decimal.NewFromInt(100))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
