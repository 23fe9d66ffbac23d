package commands_test

import (
	"testing"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
	"varto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	cmd, err := commands.NewRemoveOrderCommand(testOrder.ID(), actorAs(t, kernel.RoleAdmin))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_ActiveDeliveryRefused(t *testing.T) {
	ctx := t.Context()

	testOrder := newAssignedOrder(t)
	cmd, err := commands.NewRemoveOrderCommand(testOrder.ID(), actorAs(t, kernel.RoleAdmin))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRemoveOrderCommandHandler_Handle_TerminalOrderRemovable(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	require.NoError(t, testOrder.TransitionTo(order.Cancelled, vendor))

	cmd, err := commands.NewRemoveOrderCommand(testOrder.ID(), actorAs(t, kernel.RoleAdmin))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
}

func TestNewRemoveOrderCommand_AdminOnly(t *testing.T) {
	for _, role := range []kernel.Role{kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleCourier} {
		_, err := commands.NewRemoveOrderCommand(kernel.NewUUID(), actorAs(t, role))
		require.ErrorIs(t, err, errs.ErrPermissionDenied, "role %s", role)
	}
}

func TestUpdateOrderDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Confirmed)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())

	cmd, err := commands.NewUpdateOrderDetailsCommand(testOrder.ID(),
		commands.AddressInput{Street: "Yeni Sk. 3", District: "Moda", City: "Istanbul", Directions: "blue door"},
		"leave at the door", mustMoney(t, "40.00"), vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderDetailsCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "Yeni Sk. 3", testOrder.Address().Street())
	assert.Equal(t, "leave at the door", testOrder.Details().DeliveryNotes)
	assert.True(t, testOrder.Details().DeliveryFee.IsEqual(mustMoney(t, "40.00")))
	assert.Equal(t, order.Confirmed, testOrder.Status(), "no status change")
	require.NotNil(t, updated, "the committed order comes back to the caller")
	assert.Equal(t, "Yeni Sk. 3", updated.Address().Street())
}

func TestUpdateOrderDetailsCommandHandler_Handle_TerminalOrderRefused(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	require.NoError(t, testOrder.TransitionTo(order.Cancelled, vendor))

	cmd, err := commands.NewUpdateOrderDetailsCommand(testOrder.ID(),
		commands.AddressInput{Street: "Yeni Sk. 3", District: "Moda", City: "Istanbul"},
		"", mustMoney(t, "40.00"), vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderDetailsCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
