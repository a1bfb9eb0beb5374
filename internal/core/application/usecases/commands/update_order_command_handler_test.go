package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeStoredOrder(t *testing.T, orderID, clientID, productID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), productID, 5, decimal.NewFromInt(25000))
	require.NoError(t, err)
	stored, err := order.NewOrder(orderID, clientID, []order.Item{item})
	require.NoError(t, err)
	return stored
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItems(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	oldProductID := kernel.NewUUID()
	newProductID := kernel.NewUUID()

	stored := makeStoredOrder(t, orderID, clientID, oldProductID)

	item, err := commands.NewOrderItemArgument(newProductID, 10, decimal.NewFromInt(30000))
	require.NoError(t, err)
	items := []commands.OrderItemArgument{item}
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, &items)
	require.NoError(t, err)

	var updated *order.Order
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, newProductID).Return(makeTestProduct(t, newProductID), nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, updated)
	require.Len(t, updated.Items(), 1)
	require.Equal(t, newProductID, updated.Items()[0].ProductID())
	require.True(t, updated.TotalAmount().Equal(decimal.NewFromInt(300000)))

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_EmptyItemsClearsOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	stored := makeStoredOrder(t, orderID, clientID, kernel.NewUUID())

	items := []commands.OrderItemArgument{}
	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, &items)
	require.NoError(t, err)

	var updated *order.Order
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, updated)
	require.Empty(t, updated.Items())
	require.True(t, updated.TotalAmount().IsZero())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OmittedItemsLeaveSetUntouched(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	oldClientID := kernel.NewUUID()
	newClientID := kernel.NewUUID()

	stored := makeStoredOrder(t, orderID, oldClientID, kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderCommand(orderID, &newClientID, nil)
	require.NoError(t, err)

	var updated *order.Order
	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, newClientID).Return(makeTestClient(t, newClientID), nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, updated)
	require.Equal(t, newClientID, updated.ClientID())
	require.Len(t, updated.Items(), 1, "item set must survive an update that omits items")
	require.True(t, updated.TotalAmount().Equal(decimal.NewFromInt(125000)))

	clientRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_UnknownOrder_ReturnsNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(orderID, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	// Unknown order stays not-found, unlike dangling references
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_UnknownClientReference_ReturnsValidationError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	newClientID := kernel.NewUUID()

	stored := makeStoredOrder(t, orderID, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderCommand(orderID, &newClientID, nil)
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, newClientID).
			Return(nil, errs.NewObjectNotFoundError("client", newClientID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	clientRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
